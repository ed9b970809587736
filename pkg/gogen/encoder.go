// Package wsdlgo renders a *plan.BindingPlan to Go source: one file
// declaring the record types, fault unions, and service client the plan
// describes, syntax-checked and gofmt'd before being handed to the
// caller.
package wsdlgo

import (
	"bufio"
	"bytes"
	"fmt"
	"go/parser"
	"go/token"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/netwo-io/wsdlgen/pkg/plan"
)

// Encoder generates Go code from a binding plan.
type Encoder interface {
	// Encode renders p to the Encoder's writer as a complete Go source
	// file, including package clause and imports.
	Encode(p *plan.BindingPlan) error
}

// PackageName is the output file's package clause, set from the CLI's
// -pkg flag; empty means "providers".
type PackageName string

func (p PackageName) String() string {
	if p == "" {
		return "providers"
	}
	return strings.ReplaceAll(strings.ToLower(string(p)), ".", "")
}

type goEncoder struct {
	w    io.Writer
	pkg  PackageName
	plan *plan.BindingPlan

	needsStdPkg map[string]bool
	needsExtPkg map[string]bool
}

// NewEncoder creates an Encoder that writes Go code for package pkg to w.
func NewEncoder(w io.Writer, pkg PackageName) Encoder {
	return &goEncoder{
		w:           w,
		pkg:         pkg,
		needsStdPkg: make(map[string]bool),
		needsExtPkg: make(map[string]bool),
	}
}

func gofmtPath() (string, error) {
	goroot := os.Getenv("GOROOT")
	if goroot != "" {
		return filepath.Join(goroot, "bin", "gofmt"), nil
	}
	return exec.LookPath("gofmt")
}

func (ge *goEncoder) Encode(p *plan.BindingPlan) error {
	if p == nil {
		return nil
	}
	ge.plan = p

	var body bytes.Buffer
	if err := ge.writeRecords(&body); err != nil {
		return fmt.Errorf("rendering records: %v", err)
	}
	if err := ge.writeFaults(&body); err != nil {
		return fmt.Errorf("rendering fault unions: %v", err)
	}
	if err := ge.writeService(&body); err != nil {
		return fmt.Errorf("rendering service client: %v", err)
	}

	var src bytes.Buffer
	fmt.Fprintf(&src, "package %s\n\nimport (\n", ge.pkg.String())
	for pkg := range ge.needsStdPkg {
		fmt.Fprintf(&src, "%q\n", pkg)
	}
	if len(ge.needsStdPkg) > 0 {
		fmt.Fprintf(&src, "\n")
	}
	for pkg := range ge.needsExtPkg {
		fmt.Fprintf(&src, "%q\n", pkg)
	}
	fmt.Fprintf(&src, ")\n\n")
	ge.writeComments(&src, "Namespace", "is the operation target namespace carried over from the source WSDL.")
	fmt.Fprintf(&src, "var Namespace = %q\n\n", p.Namespace)
	if _, err := io.Copy(&src, &body); err != nil {
		return err
	}

	return ge.finish(src.Bytes())
}

// finish syntax-checks src, then pipes it through gofmt to ge.w, the same
// two-step pipeline the teacher's Encode does.
func (ge *goEncoder) finish(src []byte) error {
	fset := token.NewFileSet()
	if _, err := parser.ParseFile(fset, "", src, parser.ParseComments); err != nil {
		var numbered bytes.Buffer
		s := bufio.NewScanner(bytes.NewReader(src))
		for line := 1; s.Scan(); line++ {
			fmt.Fprintf(&numbered, "%5d\t%s\n", line, s.Bytes())
		}
		return fmt.Errorf("generated bad code: %v\n%s", err, numbered.String())
	}

	path, err := gofmtPath()
	if err != nil {
		return fmt.Errorf("cannot find gofmt: %v", err)
	}
	var out, errb bytes.Buffer
	cmd := exec.Cmd{
		Path:   path,
		Stdin:  bytes.NewReader(src),
		Stdout: &out,
		Stderr: &errb,
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("gofmt: %v\n%s", err, errb.String())
	}
	_, err = ge.w.Write(out.Bytes())
	return err
}

// writeComments writes comments to w, capped at ~60 columns, matching the
// teacher's wrapping width.
func (ge *goEncoder) writeComments(w io.Writer, name, comment string) {
	comment = strings.TrimSpace(strings.ReplaceAll(comment, "\n", " "))
	if comment == "" {
		comment = name + " was auto-generated from a WSDL binding."
	} else if !strings.HasPrefix(comment, name) {
		comment = name + " " + comment
	}
	count, line := 0, ""
	for _, word := range strings.Fields(comment) {
		if line == "" {
			count, line = 2, "//"
		}
		count += len(word)
		if count > 60 {
			fmt.Fprintf(w, "%s %s\n", line, word)
			count, line = 0, ""
			continue
		}
		line = line + " " + word
		count++
	}
	if line != "" {
		fmt.Fprintf(w, "%s\n", line)
	}
}
