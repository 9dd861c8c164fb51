// Command gallivant runs TCU/printer test scripts against either a real
// serial device or an in-memory fixture, rendering any syntax diagnostics
// and the script's GUI output to the terminal.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/sullyy9/gallivant"
	"github.com/sullyy9/gallivant/report"
	"github.com/sullyy9/gallivant/request"
	"github.com/sullyy9/gallivant/serialio"
	"github.com/sullyy9/gallivant/transact"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "gallivant",
		Short:         "Drive TCU/thermal-printer test scripts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var (
		tcuDevice     string
		printerDevice string
		measurements  map[string]string
		noColor       bool
	)

	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Parse and execute a test script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading script: %w", err)
			}

			interp, diags := gallivant.New(args[0], string(src))
			if len(diags) > 0 {
				renderer := report.Renderer{Colorize: !noColor}
				_, _ = renderer.Render(os.Stderr, diags)
				return fmt.Errorf("%d syntax error(s)", len(diags))
			}

			fixture, err := parseMeasurements(measurements)
			if err != nil {
				return err
			}

			tcuPort, closeTCU, err := openPort(tcuDevice, fixture)
			if err != nil {
				return fmt.Errorf("opening TCU port: %w", err)
			}
			defer closeTCU()

			printerPort, closePrinter, err := openPort(printerDevice, fixture)
			if err != nil {
				return fmt.Errorf("opening printer port: %w", err)
			}
			defer closePrinter()

			host := &host{
				stdin:       bufio.NewReader(os.Stdin),
				tcuPort:     tcuPort,
				printerPort: printerPort,
			}
			if err := host.run(interp); err != nil {
				var diag *report.Diagnostic
				if errors.As(err, &diag) {
					renderer := report.Renderer{Colorize: !noColor}
					_, _ = renderer.Render(os.Stderr, []*report.Diagnostic{diag})
				} else {
					fmt.Fprintln(os.Stderr, err)
				}
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tcuDevice, "tcu", "", "path to the TCU serial device (default: in-memory fixture)")
	cmd.Flags().StringVar(&printerDevice, "printer", "", "path to the printer USB device (default: in-memory fixture)")
	cmd.Flags().StringToStringVar(&measurements, "measurement", nil, "channel=value fixture measurements, e.g. --measurement 4=2721")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI color in diagnostic output")

	return cmd
}

// openPort returns the opened device file when device is non-empty,
// or an in-memory fixture wired to respond with fixture's measurements
// otherwise. The standard library's os.File already satisfies
// [serialio.Port] (Read/Write), so no third-party serial driver is needed
// for the real-device path.
func openPort(device string, fixture map[byte]uint32) (serialio.Port, func(), error) {
	if device == "" {
		return serialio.NewFixturePort(fixture), func() {}, nil
	}

	f, err := os.OpenFile(device, os.O_RDWR, 0)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

func parseMeasurements(raw map[string]string) (map[byte]uint32, error) {
	out := make(map[byte]uint32, len(raw))
	for k, v := range raw {
		channel, err := strconv.ParseUint(k, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid --measurement channel %q: %w", k, err)
		}
		value, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid --measurement value %q: %w", v, err)
		}
		out[byte(channel)] = uint32(value)
	}
	return out, nil
}

// host drives an Interpreter to completion, performing the I/O each
// request implies and printing GUI output to the terminal.
type host struct {
	stdin       *bufio.Reader
	tcuPort     serialio.Port
	printerPort serialio.Port
}

func (h *host) run(interp *gallivant.Interpreter) error {
	for {
		req, err, ok := interp.Next()
		if !ok {
			return nil
		}
		if err != nil {
			return err
		}
		if err := h.handle(req); err != nil {
			return err
		}
	}
}

func (h *host) handle(req request.Request) error {
	switch r := req.(type) {
	case request.None:
		return nil

	case request.Wait:
		time.Sleep(r.Duration)
		return nil

	case request.GUIPrint:
		fmt.Println(r.Message)
		return nil

	case request.GUIDialogue:
		fmt.Println(r.Message)
		if r.Kind == request.ManualInput {
			fmt.Print("Press Enter to continue...")
			_, _ = h.stdin.ReadString('\n')
		}
		return nil

	case request.TCUFlush:
		return drain(h.tcuPort)

	case request.TCUTransact:
		return h.drive(h.tcuPort, r.Tx)

	case request.PrinterOpen, request.PrinterClose:
		return nil

	case request.PrinterTransact:
		return h.drive(h.printerPort, r.Tx)

	default:
		return fmt.Errorf("unhandled request type %T", req)
	}
}

// drive repeatedly calls tx.Process until it succeeds or fails, sleeping
// briefly between polls so it doesn't spin a CPU core while waiting for a
// real device to respond.
func (h *host) drive(port serialio.Port, tx *transact.Transaction) error {
	for {
		status, err := tx.Process(port)
		if err != nil {
			return err
		}
		if status == transact.Success {
			return nil
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func drain(port serialio.Port) error {
	buf := make([]byte, 64)
	for {
		_, err := port.Read(buf)
		if errors.Is(err, os.ErrDeadlineExceeded) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
