package elastic

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/elastic/go-elasticsearch/v7/esapi"

	"github.com/metaspace/smquery/v1/search"
)

type searchResponse struct {
	Hits struct {
		Hits []struct {
			ID     string   `json:"_id"`
			Score  *float64 `json:"_score"`
			Source Document `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

type countResponse struct {
	Count int64 `json:"count"`
}

type getResponse struct {
	ID     string   `json:"_id"`
	Found  bool     `json:"found"`
	Source Document `json:"_source"`
}

// SearchAnnotations runs a translated annotation query. The window of q is
// passed as the request-level from/size parameters.
func (e *Elastic) SearchAnnotations(ctx context.Context, q *search.Query) ([]Hit, error) {
	if e.client == nil {
		return nil, ErrNotConnected
	}

	body, err := q.BodyFor(e.dialect)
	if err != nil {
		return nil, fmt.Errorf("failed to render search body: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, e.cfg.RequestTimeout)
	defer cancel()

	opts := []func(*esapi.SearchRequest){
		e.client.Search.WithContext(ctx),
		e.client.Search.WithIndex(e.cfg.Index),
		e.client.Search.WithBody(bytes.NewReader(body)),
	}
	if q.Windowed() {
		opts = append(opts,
			e.client.Search.WithFrom(q.From),
			e.client.Search.WithSize(q.Size),
		)
	}

	res, err := e.client.Search(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to search annotations: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("failed to search annotations: %w", decodeError(res.StatusCode, res.Body))
	}

	var decoded searchResponse
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	hits := make([]Hit, 0, len(decoded.Hits.Hits))
	for _, h := range decoded.Hits.Hits {
		hits = append(hits, Hit{ID: h.ID, Score: h.Score, Document: h.Source})
	}

	e.logger.Debug("Annotation search finished", nil, map[string]interface{}{
		"index": e.cfg.Index,
		"hits":  len(hits),
	})
	return hits, nil
}

// CountAnnotations counts the documents matched by q. Sort keys and window are
// ignored.
func (e *Elastic) CountAnnotations(ctx context.Context, q *search.Query) (int64, error) {
	if e.client == nil {
		return 0, ErrNotConnected
	}

	body, err := q.CountBodyFor(e.dialect)
	if err != nil {
		return 0, fmt.Errorf("failed to render count body: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, e.cfg.RequestTimeout)
	defer cancel()

	res, err := e.client.Count(
		e.client.Count.WithContext(ctx),
		e.client.Count.WithIndex(e.cfg.Index),
		e.client.Count.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to count annotations: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return 0, fmt.Errorf("failed to count annotations: %w", decodeError(res.StatusCode, res.Body))
	}

	var decoded countResponse
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		return 0, fmt.Errorf("failed to decode count response: %w", err)
	}
	return decoded.Count, nil
}

// AnnotationByID loads one annotation document. It returns ErrNotFound when
// the index has no document with the id.
func (e *Elastic) AnnotationByID(ctx context.Context, id string) (*Hit, error) {
	if e.client == nil {
		return nil, ErrNotConnected
	}

	ctx, cancel := context.WithTimeout(ctx, e.cfg.RequestTimeout)
	defer cancel()

	res, err := e.client.Get(e.cfg.Index, id, e.client.Get.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to load annotation %q: %w", id, err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if res.IsError() {
		return nil, fmt.Errorf("failed to load annotation %q: %w", id, decodeError(res.StatusCode, res.Body))
	}

	var decoded getResponse
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode annotation %q: %w", id, err)
	}
	if !decoded.Found {
		return nil, ErrNotFound
	}
	return &Hit{ID: decoded.ID, Document: decoded.Source}, nil
}

// IndexAnnotation stores doc under id, replacing an existing document.
// refresh makes the document visible to searches before returning.
func (e *Elastic) IndexAnnotation(ctx context.Context, id string, doc Document, refresh bool) error {
	if e.client == nil {
		return ErrNotConnected
	}
	if id == "" {
		return errors.New("annotation id is required")
	}
	if err := search.ValidMz(float64(doc.Mz)); err != nil {
		return fmt.Errorf("failed to encode annotation %q: %w", id, err)
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode annotation %q: %w", id, err)
	}

	ctx, cancel := context.WithTimeout(ctx, e.cfg.RequestTimeout)
	defer cancel()

	opts := []func(*esapi.IndexRequest){
		e.client.Index.WithContext(ctx),
		e.client.Index.WithDocumentID(id),
	}
	if refresh {
		opts = append(opts, e.client.Index.WithRefresh("true"))
	}

	res, err := e.client.Index(e.cfg.Index, bytes.NewReader(body), opts...)
	if err != nil {
		return fmt.Errorf("failed to index annotation %q: %w", id, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("failed to index annotation %q: %w", id, decodeError(res.StatusCode, res.Body))
	}
	return nil
}
