package pipeline

import (
	"context"
	"log"
	"runtime"

	"golang.org/x/sync/errgroup"

	"kazi-engine/internal/domain"
)

// Store is the slice of the persistence collaborator the batch runner
// needs. Insert reports inserted=false for a URL that already exists.
type Store interface {
	InsertJob(ctx context.Context, rec domain.NormalizedJobRecord, tags []domain.SkillTag) (id int64, inserted bool, err error)
	StartRun(ctx context.Context, source, query string) (runID string, err error)
	UpdateRun(ctx context.Context, runID string, upd RunUpdate) error
}

// RunUpdate closes out one row of the run log.
type RunUpdate struct {
	Found    int
	Saved    int
	Errors   int
	Status   string // running | completed | failed
	ErrorMsg string
}

// BatchResult is what one batch run did with its input.
type BatchResult struct {
	Found      int `json:"found"`
	Saved      int `json:"saved"`
	Duplicates int `json:"duplicates"`
	Malformed  int `json:"malformed"`
	Errors     int `json:"errors"`
}

type normalized struct {
	rec  domain.NormalizedJobRecord
	tags []domain.SkillTag
	ok   bool
}

// Run normalizes a batch of raw records and stores the results. Each
// record is independent, so normalization fans out across CPUs; inserts
// stay sequential because SQLite wants one writer. Malformed rows are
// logged and skipped, never fatal. Storage failure fails the run but
// leaves already-saved records intact.
func (n *Normalizer) Run(ctx context.Context, st Store, source, query string, raws []domain.RawJobRecord, onSaved func()) (BatchResult, error) {
	res := BatchResult{Found: len(raws)}

	runID, err := st.StartRun(ctx, source, query)
	if err != nil {
		return res, err
	}

	out := make([]normalized, len(raws))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i := range raws {
		i := i
		g.Go(func() error {
			rec, tags, err := n.Normalize(raws[i])
			if err != nil {
				log.Printf("[batch:%s] skipped malformed record title=%q err=%v", source, raws[i].Title, err)
				return nil // skip, don't abort siblings
			}
			out[i] = normalized{rec: rec, tags: tags, ok: true}
			return nil
		})
	}
	_ = g.Wait()

	var storeErr error
	for _, item := range out {
		if !item.ok {
			res.Malformed++
			continue
		}
		_, inserted, err := st.InsertJob(ctx, item.rec, item.tags)
		if err != nil {
			log.Printf("[batch:%s] insert error url=%q err=%v", source, item.rec.URL, err)
			res.Errors++
			storeErr = err
			continue
		}
		if !inserted {
			res.Duplicates++ // already processed, not an error
			continue
		}
		res.Saved++
		if onSaved != nil {
			onSaved()
		}
	}

	upd := RunUpdate{
		Found:  res.Found,
		Saved:  res.Saved,
		Errors: res.Errors + res.Malformed,
		Status: "completed",
	}
	if storeErr != nil {
		upd.Status = "failed"
		upd.ErrorMsg = storeErr.Error()
	}
	if err := st.UpdateRun(ctx, runID, upd); err != nil {
		log.Printf("[batch:%s] run log update failed run=%s err=%v", source, runID, err)
	}

	return res, storeErr
}
