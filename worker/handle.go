package worker

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/katalvlaran/countdown/finder"
	"github.com/katalvlaran/countdown/formula"
)

// Handle decodes one JSON request, runs it on f and returns the encoded
// response. Every failure, including a panic inside the search, is reported
// in the response's error field.
func Handle(f *finder.Finder, msg []byte) []byte {
	start := time.Now()
	resp, err := dispatch(f, msg)
	if err != nil {
		resp = Response{Error: err.Error()}
	}
	resp.Time = time.Since(start).Milliseconds()

	out, err := json.Marshal(resp)
	if err != nil {
		out, _ = json.Marshal(Response{Error: err.Error(), Time: resp.Time})
	}

	return out
}

func dispatch(f *finder.Finder, msg []byte) (resp Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	var req Request
	if err := json.Unmarshal(msg, &req); err != nil {
		return Response{}, fmt.Errorf("decode request: %w", err)
	}

	switch req.Type {
	case KindTargets:
		resp.Targets = f.FindTargets(req.Inputs, req.Options.rangeOptions()...)
		if resp.Targets == nil {
			resp.Targets = make([]finder.Target, 0)
		}
	case KindSolve:
		fs, err := f.FindAllNearest(req.Inputs, req.Target, req.Options.solveOptions()...)
		if err != nil {
			return Response{}, err
		}
		resp.Solutions = make([]formula.Flat, len(fs))
		for i, fm := range fs {
			resp.Solutions[i] = fm.Flatten()
		}
	case KindAnalyse:
		resp.Analysis = f.Analyse(req.Games, req.Options.rangeOptions()...)
		if resp.Analysis == nil {
			resp.Analysis = make([]finder.Analysis, 0)
		}
	default:
		return Response{}, fmt.Errorf("%w: %q", ErrUnknownKind, req.Type)
	}

	return resp, nil
}
