// Poker decision trainer: generates preflop and postflop drills, grades
// the trainee's choices against opening-range and pot-odds theory, and
// adapts difficulty to their recent results.
//
// Modes:
//
//	server          HTTP API (default)
//	--drill         interactive terminal trainer
//	--migrate       apply the DB schema and exit
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/joho/godotenv"

	"poker-trainer/server/scenario"
	"poker-trainer/server/store"
)

//
// ===== pretty printing =====
//

var useColor bool

const (
	colReset  = "\033[0m"
	colBold   = "\033[1m"
	colDim    = "\033[2m"
	colGreen  = "\033[32m"
	colRed    = "\033[31m"
	colYellow = "\033[33m"
	colMag    = "\033[35m"
	colCyan   = "\033[36m"
)

func c(code, s string) string {
	if !useColor {
		return s
	}
	return code + s + colReset
}
func bold(s string) string { return c(colBold, s) }
func dim(s string) string  { return c(colDim, s) }
func good(s string) string { return c(colGreen, s) }
func warn(s string) string { return c(colYellow, s) }
func bad(s string) string  { return c(colRed, s) }
func cyan(s string) string { return c(colCyan, s) }
func mag(s string) string  { return c(colMag, s) }
func section(title string) { fmt.Printf("\n%s %s %s\n", dim("──"), bold(title), dim("──")) }

//
// ===== bootstrap =====
//

func mustEnv(keys ...string) {
	for _, k := range keys {
		if os.Getenv(k) == "" {
			log.Fatalf("Missing required env var %s. Put it in .env (dev) or set it on the host (prod).", k)
		}
	}
}
func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
func atoiDef(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
func asBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y", "on":
		return true
	default:
		return false
	}
}

var stopFlag atomic.Bool

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	_ = godotenv.Load()

	useColor = (os.Getenv("NO_COLOR") == "") && (strings.TrimSpace(os.Getenv("USE_COLOR")) != "0")

	var migrate, drill bool
	for _, a := range os.Args[1:] {
		switch a {
		case "--migrate":
			migrate = true
		case "--drill":
			drill = true
		}
	}

	if migrate {
		mustEnv("DATABASE_URL")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go watchSignals(cancel)

	// DB is optional everywhere except --migrate; the trainer runs fully
	// in memory without one.
	var db *store.DB
	if dsn := getenv("DATABASE_URL", ""); dsn != "" {
		p, err := store.Open(dsn)
		if err != nil {
			log.Printf("DB disabled (open failed): %v", err)
		} else {
			db = p
			defer db.Close(context.Background())
			if asBool(os.Getenv("AUTO_MIGRATE")) || migrate {
				if err := store.Migrate(context.Background(), db); err != nil {
					if migrate {
						log.Fatal(err)
					}
					log.Printf("migrate failed (continuing without DB): %v", err)
					db = nil
				} else {
					log.Println("migrated")
				}
			}
		}
	}
	if migrate {
		if db == nil {
			log.Fatal("--migrate: could not open DATABASE_URL")
		}
		return
	}

	if drill {
		start := scenario.Beginner
		if v := os.Getenv("DIFFICULTY"); v != "" {
			t, err := scenario.ParseTier(v)
			if err != nil {
				log.Fatal(err)
			}
			start = t
		}
		maxSeconds := atoiDef(os.Getenv("MAX_SECONDS"), 0)
		var deadline time.Time
		if maxSeconds > 0 {
			deadline = time.Now().Add(time.Duration(maxSeconds) * time.Second)
		}
		checkStop := func() bool {
			select {
			case <-ctx.Done():
				stopFlag.Store(true)
			default:
			}
			if stopFlag.Load() {
				return true
			}
			if !deadline.IsZero() && time.Now().After(deadline) {
				stopFlag.Store(true)
				return true
			}
			return false
		}
		runDrill(checkStop, db, start)
		return
	}

	port := getenv("PORT", "8080")
	r := Router(db)
	srv := &http.Server{Addr: ":" + port, Handler: r, ReadTimeout: 15 * time.Second, WriteTimeout: 15 * time.Second}
	log.Printf("listening on http://localhost:%s (Ctrl+C to stop)", port)
	log.Fatal(srv.ListenAndServe())
}

func watchSignals(cancel context.CancelFunc) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c
	stopFlag.Store(true)
	cancel()
}
