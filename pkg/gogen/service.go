package wsdlgo

import (
	"fmt"
	"io"

	"github.com/netwo-io/wsdlgen/pkg/model"
	"github.com/netwo-io/wsdlgen/pkg/plan"
)

// writeService renders the Client type and one method per operation, in
// plan order.
func (ge *goEncoder) writeService(w io.Writer) error {
	ge.needsStdPkg["context"] = true
	ge.needsExtPkg["github.com/netwo-io/wsdlgen/pkg/soap"] = true
	ge.needsExtPkg["github.com/rs/zerolog"] = true

	ge.genClientType(w)
	for _, name := range ge.plan.OperationsOrder {
		op := ge.plan.Operations[name]
		ge.genOperationMethod(w, op)
	}
	return nil
}

func (ge *goEncoder) genClientType(w io.Writer) {
	ge.writeComments(w, "Client", fmt.Sprintf("calls %s's operations over an injected soap.Transport.", ge.plan.ServiceName))
	fmt.Fprintf(w, "type Client struct {\n")
	fmt.Fprintf(w, "Transport soap.Transport\n")
	fmt.Fprintf(w, "EndpointURL string\n")
	fmt.Fprintf(w, "Log *zerolog.Logger\n")
	fmt.Fprintf(w, "}\n\n")

	ge.writeComments(w, "ClientOption", "configures a Client at construction time.")
	fmt.Fprintf(w, "type ClientOption func(*Client)\n\n")

	ge.writeComments(w, "WithLogger", "makes c log each call's outgoing and incoming envelope at trace level.")
	fmt.Fprintf(w, "func WithLogger(log *zerolog.Logger) ClientOption {\n")
	fmt.Fprintf(w, "return func(c *Client) {\nc.Log = log\n}\n}\n\n")

	ge.writeComments(w, "NewClient", fmt.Sprintf("creates a %s Client bound to endpointURL, calling out through transport.", ge.plan.ServiceName))
	fmt.Fprintf(w, "func NewClient(transport soap.Transport, endpointURL string, opts ...ClientOption) *Client {\n")
	fmt.Fprintf(w, "if endpointURL == \"\" {\nendpointURL = %q\n}\n", ge.plan.EndpointURL)
	fmt.Fprintf(w, "c := &Client{Transport: transport, EndpointURL: endpointURL}\n")
	fmt.Fprintf(w, "for _, opt := range opts {\nopt(c)\n}\n")
	fmt.Fprintf(w, "return c\n}\n\n")
}

func methodName(opName string) string {
	return fieldIdent(opName)
}

// inputWireName returns the wire element name args are collected from:
// the resolved input record's original XSD element name, i.e. the
// document/literal-wrapped input element the operation expects.
func (ge *goEncoder) inputWireName(op *plan.OpPlan) string {
	if rec, ok := ge.plan.Records[op.InputRecord]; ok {
		return rec.SourceName
	}
	return op.SourceName
}

func (ge *goEncoder) genOperationMethod(w io.Writer, op *plan.OpPlan) {
	name := methodName(op.Name)
	ge.writeComments(w, name, fmt.Sprintf("calls the %q operation.", op.SourceName))

	switch op.Shape {
	case model.ShapeOneWay:
		ge.genOneWayMethod(w, op, name)
	case model.ShapeRequestResponse:
		ge.genRequestResponseMethod(w, op, name, false)
	case model.ShapeRequestResponseWithFaults:
		ge.genRequestResponseMethod(w, op, name, true)
	default:
		ge.genStubMethod(w, op, name)
	}
}

func (ge *goEncoder) genOneWayMethod(w io.Writer, op *plan.OpPlan, name string) {
	fmt.Fprintf(w, "func (c *Client) %s(ctx context.Context, in *%s) error {\n", name, op.InputRecord)
	fmt.Fprintf(w, "args := in.ToElement(%q).Children()\n", ge.inputWireName(op))
	fmt.Fprintf(w, "return soap.OneWay(ctx, c.Transport, c.EndpointURL, Namespace, %q, args, c.Log)\n", op.SourceName)
	fmt.Fprintf(w, "}\n\n")
}

func (ge *goEncoder) genRequestResponseMethod(w io.Writer, op *plan.OpPlan, name string, withFaults bool) {
	fmt.Fprintf(w, "func (c *Client) %s(ctx context.Context, in *%s) (*%s, error) {\n", name, op.InputRecord, op.OutputRecord)
	fmt.Fprintf(w, "args := in.ToElement(%q).Children()\n", ge.inputWireName(op))
	fmt.Fprintf(w, "resp, err := soap.RequestResponse(ctx, c.Transport, c.EndpointURL, Namespace, %q, args, c.Log)\n", op.SourceName)
	fmt.Fprintf(w, "if err != nil {\n")
	if withFaults {
		ge.needsStdPkg["errors"] = true
		fmt.Fprintf(w, "var envFault *soap.EnvelopeFault\n")
		fmt.Fprintf(w, "if errors.As(err, &envFault) {\n")
		fmt.Fprintf(w, "if fault := new%s(envFault.Detail); fault != nil {\nreturn nil, fault\n}\n", op.Faults.Name)
		fmt.Fprintf(w, "}\n")
	}
	fmt.Fprintf(w, "return nil, err\n}\n")
	fmt.Fprintf(w, "out := &%s{}\n", op.OutputRecord)
	fmt.Fprintf(w, "if err := out.FromElement(resp.Body); err != nil {\nreturn nil, err\n}\n")
	fmt.Fprintf(w, "return out, nil\n}\n\n")
}

// genStubMethod emits the documented-limitation stub for the shapes this
// generator can parse but can't usefully call: ShapeInputFaultsOnly (no
// output to decode) and ShapeUnsupported (no input message declared).
func (ge *goEncoder) genStubMethod(w io.Writer, op *plan.OpPlan, name string) {
	if op.InputRecord != "" {
		fmt.Fprintf(w, "func (c *Client) %s(ctx context.Context, in *%s) error {\n", name, op.InputRecord)
	} else {
		fmt.Fprintf(w, "func (c *Client) %s(ctx context.Context) error {\n", name)
	}
	fmt.Fprintf(w, "return &soap.Unimplemented{Operation: %q}\n}\n\n", op.SourceName)
}
