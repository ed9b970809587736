package soap

import (
	"context"

	"github.com/netwo-io/wsdlgen/pkg/xmlnode"
	"github.com/rs/zerolog"
)

// Transport is the injected capability generated clients POST through.
// A concrete net/http-backed implementation ships in httptransport.go;
// tests and non-HTTP hosts can supply their own.
type Transport interface {
	POST(ctx context.Context, url string, headers map[string]string, body []byte) (status int, respBody []byte, err error)
}

var requestHeaders = map[string]string{
	"Content-Type": "text/xml",
	"MessageType":  "Call",
}

func traceSend(log *zerolog.Logger, envelope []byte) {
	if log != nil {
		log.Trace().Bytes("envelope", envelope).Msg("sending")
	}
}

func traceReceive(log *zerolog.Logger, body []byte) {
	if log != nil {
		log.Trace().Bytes("body", body).Msg("received")
	}
}

func buildRequest(ns, op string, args []*xmlnode.Node) ([]byte, error) {
	envelope := BuildEnvelope(ns, op, args)
	return xmlnode.Serialize(envelope)
}

func post(ctx context.Context, t Transport, url string, body []byte) ([]byte, error) {
	status, respBody, err := t.POST(ctx, url, requestHeaders, body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if status < 200 || status >= 300 {
		return nil, &TransportError{Status: status}
	}
	return respBody, nil
}

// OneWay serializes a request envelope for op against base url baseURL
// and namespace ns, POSTs it via t, and discards the response body apart
// from surfacing any transport error. log may be nil.
func OneWay(ctx context.Context, t Transport, baseURL, ns, op string, args []*xmlnode.Node, log *zerolog.Logger) error {
	reqBody, err := buildRequest(ns, op, args)
	if err != nil {
		return err
	}
	traceSend(log, reqBody)

	respBody, err := post(ctx, t, baseURL, reqBody)
	if err != nil {
		return err
	}
	traceReceive(log, respBody)
	return nil
}

// RequestResponse serializes a request envelope, POSTs it, parses the
// response via ParseResponse, and returns the resulting *Response for the
// caller to decode. On a recognized envelope fault it returns the
// *EnvelopeFault as-is so the generated operation method can dispatch it
// against any declared fault union.
func RequestResponse(ctx context.Context, t Transport, baseURL, ns, op string, args []*xmlnode.Node, log *zerolog.Logger) (*Response, error) {
	reqBody, err := buildRequest(ns, op, args)
	if err != nil {
		return nil, err
	}
	traceSend(log, reqBody)

	respBody, err := post(ctx, t, baseURL, reqBody)
	if err != nil {
		return nil, err
	}
	traceReceive(log, respBody)

	return ParseResponse(respBody)
}
