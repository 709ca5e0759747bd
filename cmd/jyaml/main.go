// Command jyaml is a thin CLI wrapper around the jyaml package: a single
// validate command, out of core scope but defined by the format's external
// interface.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	pkgerrors "github.com/pkg/errors"

	"github.com/masinc/jyaml"
)

var (
	app = kingpin.New("jyaml", "Validate JYAML documents.")

	verbose = app.Flag("v", "Log phase timing at debug level (parse limits are not logged).").Short('v').Bool()

	validateCmd     = app.Command("validate", "Validate a document; exit non-zero on error.").Default()
	validateFile    = validateCmd.Arg("file", "Path to a .jyml/.jyaml file (stdin if omitted).").String()
	validateDoc     = validateCmd.Flag("document", "Parse in document mode and print collected comments and issues as JSON.").Bool()
	validatePermiss = validateCmd.Flag("permissive", "Allow duplicate keys (last-wins).").Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := newLogger(os.Stderr)
	if err := runValidate(logger, *validateFile, *validateDoc, *validatePermiss); err != nil {
		fmt.Fprintln(os.Stdout, err.Error())
		os.Exit(1)
	}
}

func newLogger(w io.Writer) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	if *verbose {
		return level.NewFilter(logger, level.AllowDebug())
	}
	return level.NewFilter(logger, level.AllowWarn())
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		return data, pkgerrors.Wrap(err, "reading stdin")
	}
	data, err := os.ReadFile(path)
	return data, pkgerrors.Wrapf(err, "reading %s", path)
}

// cliError renders as "line:col: kind: message" per the format's CLI error
// rendering convention; anything else (I/O failure) renders plainly.
type cliError struct{ text string }

func (e *cliError) Error() string { return e.text }

func runValidate(logger log.Logger, path string, document, permissive bool) error {
	start := time.Now()
	data, err := readInput(path)
	if err != nil {
		return &cliError{text: err.Error()}
	}

	var opts []jyaml.Option
	if permissive {
		opts = jyaml.PermissiveOptions()
	}

	if !document {
		perr := jyaml.Validate(string(data), opts...)
		level.Debug(logger).Log("msg", "validated", "file", displayName(path), "took", time.Since(start), "err", perr)
		if perr != nil {
			return asCLIError(perr)
		}
		return nil
	}

	doc, perr := jyaml.ParseDocument(string(data), opts...)
	level.Debug(logger).Log("msg", "parsed document", "file", displayName(path), "took", time.Since(start))
	if perr != nil {
		return asCLIError(perr)
	}

	summary := struct {
		Comments []jyaml.Comment `json:"comments"`
		Issues   []jyaml.Issue   `json:"issues"`
	}{Comments: doc.Comments, Issues: doc.Issues}
	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return &cliError{text: err.Error()}
	}
	fmt.Fprintln(os.Stdout, string(out))
	return nil
}

// asCLIError renders a *jyaml.Error in the CLI's "line:col: kind: message"
// form, falling back to the plain error text for anything else.
func asCLIError(err error) error {
	if je, ok := err.(*jyaml.Error); ok {
		return &cliError{text: fmt.Sprintf("%d:%d: %s: %s", je.Pos.Line, je.Pos.Column, je.Kind, je.Message)}
	}
	return &cliError{text: err.Error()}
}

func displayName(path string) string {
	if path == "" {
		return "<stdin>"
	}
	return path
}
