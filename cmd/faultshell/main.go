// Command faultshell is a host-side diagnostic console for the fault
// plane: it injects faults through the real dispatch paths with a
// non-halting handler and renders what was captured.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/google/shlex"

	"faultcode-go/apperror"
	"faultcode-go/bus"
	"faultcode-go/errcode"
	"faultcode-go/services/faultmon"
	"faultcode-go/x/logx"
)

func main() {
	logx.Init(os.Stdout)

	b := bus.NewBus(8)
	var last faultmon.Snapshot
	var have bool
	record := func(f apperror.Fault) {
		last = faultmon.Snap(f)
		have = true
	}
	apperror.SetHandler(faultmon.PublishingHandler(b, record))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	mon := faultmon.New(16)
	_ = mon.Start(ctx, b)

	fmt.Println("faultshell commands: check <code>, bool <t|f>, assert, last, recent, quit")
	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !sc.Scan() {
			return
		}
		args, err := shlex.Split(sc.Text())
		if err != nil {
			fmt.Println("parse error:", err)
			continue
		}
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "check":
			if len(args) < 2 {
				fmt.Println("usage: check <code>  (e.g. check 0x0B)")
				continue
			}
			n, err := strconv.ParseUint(args[1], 0, 32)
			if err != nil {
				fmt.Println("bad code:", err)
				continue
			}
			apperror.Check(errcode.Code(n))
		case "bool":
			apperror.CheckBool(len(args) > 1 && (args[1] == "t" || args[1] == "true"))
		case "assert":
			apperror.Assert(false)
		case "last":
			if !have {
				fmt.Println("no fault captured")
				continue
			}
			apperror.Print(last.Fault())
		case "recent":
			for _, s := range mon.Recent() {
				fmt.Printf("id=0x%X line=%d file=%s code=0x%X\n", s.ID, s.Line, s.File, s.Code)
			}
		case "quit", "exit":
			return
		default:
			fmt.Println("unknown command:", args[0])
		}
	}
}
