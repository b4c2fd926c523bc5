// Command httpx-verbs inspects the HTTP method table and checks method
// tokens, interchange values and request lines against it.
//
//	httpx-verbs GET POST          # canonical tokens, case-sensitive
//	httpx-verbs -json '"get"' 42  # interchange values
//	httpx-verbs -lines < requests # request lines on stdin
//	httpx-verbs -list             # dump the table as JSON
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"dqx0.com/go/restverb/httpx"
	"dqx0.com/go/restverb/internal/obs"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type tableEntry struct {
	ID   int        `json:"id"`
	Name string     `json:"name"`
	Verb httpx.Verb `json:"verb"`
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("httpx-verbs", flag.ContinueOnError)
	fs.SetOutput(stderr)
	list := fs.Bool("list", false, "print the method table as JSON")
	asJSON := fs.Bool("json", false, "treat arguments as JSON interchange values")
	lines := fs.Bool("lines", false, "read HTTP/1.x request lines from stdin")
	level := fs.String("log-level", "info", "minimum log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	minLevel, err := obs.ParseLevel(*level)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	logger := obs.StdLogger{L: log.New(stderr, "httpx-verbs ", log.LstdFlags), Min: minLevel}

	if *list {
		var entries []tableEntry
		for _, v := range httpx.Verbs() {
			m, _ := v.Method()
			name, _ := v.Name()
			entries = append(entries, tableEntry{ID: int(m), Name: name, Verb: v})
		}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(entries); err != nil {
			logger.Log(obs.Error, "encode table", "err", err)
			return 1
		}
		return 0
	}

	failed := 0
	check := func(input string, v httpx.Verb, err error) {
		if err != nil {
			failed++
			logger.Log(obs.Warn, "rejected", "input", input, "err", err)
			return
		}
		m, _ := v.Method()
		text, _ := v.MarshalJSON()
		logger.Log(obs.Debug, "accepted", "input", input, "id", int(m))
		fmt.Fprintf(stdout, "%s\t%d\t%s\n", v, int(m), text)
	}

	switch {
	case *lines:
		sc := bufio.NewScanner(stdin)
		for sc.Scan() {
			if sc.Text() == "" {
				continue
			}
			v, err := httpx.VerbFromRequestLine(sc.Text())
			check(sc.Text(), v, err)
		}
		if err := sc.Err(); err != nil {
			logger.Log(obs.Error, "read stdin", "err", err)
			return 1
		}
	case *asJSON:
		for _, a := range fs.Args() {
			var v httpx.Verb
			err := json.Unmarshal([]byte(a), &v)
			check(a, v, err)
		}
	default:
		for _, a := range fs.Args() {
			v, err := httpx.ParseVerb(a)
			check(a, v, err)
		}
	}
	if failed > 0 {
		logger.Log(obs.Info, "done", "failed", failed)
		return 1
	}
	return 0
}
