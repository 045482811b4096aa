package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"freetimer/audio"
	"freetimer/beep"
	"freetimer/log"
)

// runTestMode drives a session from line commands on in and reports each
// event as one line on out:
//
//	BEEP      -> beep short|long count=N rate=R
//	SHORT     -> cue short rate=R
//	LONG      -> cue long rate=R
//	TOGGLE    -> theme MODE dark=BOOL
//	STATE     -> state count=N mode=MODE dark=BOOL
//	SLEEP ms
//	QUIT
func runTestMode(s *session, in io.Reader, out io.Writer) {
	log.SessionStart("manual", s.output)

	played := func(c beep.Cue) float64 {
		if fc, ok := s.audioCtx.(*audio.FakeContext); ok {
			if p := fc.Output.Played(); len(p) > 0 {
				return p[len(p)-1].Rate
			}
		}
		return c.Rate
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		cmd := strings.TrimSpace(scanner.Text())
		switch cmd {
		case "":
		case "BEEP":
			s.signal.Beep()
			n := s.signal.Count()
			cue := s.signal.Short()
			if n == 0 {
				cue = s.signal.Long()
			}
			fmt.Fprintf(out, "beep %s count=%d rate=%g\n", cue.Name, n, played(cue))
		case "SHORT":
			s.signal.ShortBeep()
			fmt.Fprintf(out, "cue short rate=%g\n", played(s.signal.Short()))
		case "LONG":
			s.signal.LongBeep()
			fmt.Fprintf(out, "cue long rate=%g\n", played(s.signal.Long()))
		case "TOGGLE":
			s.theme.Toggle()
			fmt.Fprintf(out, "theme %s dark=%t\n", s.theme.Mode(), s.theme.Dark())
		case "STATE":
			fmt.Fprintf(out, "state count=%d mode=%s dark=%t\n", s.signal.Count(), s.theme.Mode(), s.theme.Dark())
		case "QUIT":
			log.SessionEnd(s.signal.Count())
			return
		default:
			if strings.HasPrefix(cmd, "SLEEP ") {
				if ms, err := strconv.Atoi(cmd[6:]); err == nil {
					time.Sleep(time.Duration(ms) * time.Millisecond)
				}
				continue
			}
			fmt.Fprintf(out, "error unknown command %q\n", cmd)
		}
	}
}
