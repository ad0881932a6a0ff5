package classify

// Response classifies the three raw signals of one completed request
// attempt, using parse to decode the payload. Rules are ordered; the first
// match wins:
//
//  1. Missing payload fails immediately, keeping whatever HTTP metadata the
//     transport produced. Nothing else can be analyzed without bytes.
//  2. Without an HTTP-shaped response there is no status code to consult:
//     a transport error, if any, is the cause; otherwise the absence of a
//     response is.
//  3. With bytes and an HTTP-shaped response in hand, the payload is parsed.
//     A parsed model is a success regardless of status code. On a parse
//     failure the surfaced cause prefers the deeper problem: an error-range
//     status code first, then a transport error, then the parse error
//     itself. The raw parse error is preserved in ParseErr either way.
//
// Every combination of inputs maps to exactly one Result.
func Response[M any](body []byte, transportResp any, transportErr error, parse ParseFunc[M]) Result[M] {
	info := Narrow(transportResp)

	if body == nil {
		return Result[M]{
			HTTP: info,
			Err:  &NetworkError{Kind: KindCouldNotParseData, Err: ErrNoData},
		}
	}

	if info == nil {
		if transportErr != nil {
			return Result[M]{Err: &NetworkError{Kind: KindTransportError, Err: transportErr}}
		}
		return Result[M]{Err: &NetworkError{Kind: KindNoResponse}}
	}

	model, parseErr := parse(body)
	if parseErr == nil {
		return Result[M]{Model: model, HTTP: info}
	}

	cause := &NetworkError{Kind: KindCouldNotParseData, Err: parseErr}
	switch {
	case info.StatusCode >= 400 && info.StatusCode < 600:
		cause = &NetworkError{Kind: KindStatusCode, StatusCode: info.StatusCode}
	case transportErr != nil:
		cause = &NetworkError{Kind: KindTransportError, Err: transportErr}
	}

	return Result[M]{HTTP: info, ParseErr: parseErr, Err: cause}
}
