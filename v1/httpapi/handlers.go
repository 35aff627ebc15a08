package httpapi

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/metaspace/smquery/v1/query"
	"github.com/metaspace/smquery/v1/service"
)

// ErrorResponse is the body of 4xx answers.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// CountResponse is the body of count answers.
type CountResponse struct {
	Count int64 `json:"count"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) listDatasets(c *gin.Context) {
	var criteria query.DatasetCriteria
	if !s.bind(c, &criteria) {
		return
	}
	if criteria.Limit == 0 {
		criteria.Limit = s.cfg.DefaultLimit
	}

	rows, err := s.querier.AllDatasets(c.Request.Context(), criteria)
	if err != nil {
		if s.rejected(c, err) {
			return
		}
		s.collapse(c, err)
		c.JSON(http.StatusOK, []DatasetView{})
		return
	}
	c.JSON(http.StatusOK, newDatasetViews(s.querier.Registry(), rows))
}

func (s *Server) countDatasets(c *gin.Context) {
	var criteria query.DatasetCriteria
	if !s.bind(c, &criteria) {
		return
	}

	n, err := s.querier.CountDatasets(c.Request.Context(), criteria)
	if err != nil {
		if s.rejected(c, err) {
			return
		}
		s.collapse(c, err)
		n = 0
	}
	c.JSON(http.StatusOK, CountResponse{Count: n})
}

func (s *Server) datasetByID(c *gin.Context) {
	mz, ok := s.mzParam(c)
	if !ok {
		return
	}

	ds, err := s.querier.Dataset(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.lookupFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, newDatasetView(s.querier.Registry(), *ds, mz))
}

func (s *Server) datasetByName(c *gin.Context) {
	mz, ok := s.mzParam(c)
	if !ok {
		return
	}

	ds, err := s.querier.DatasetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		s.lookupFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, newDatasetView(s.querier.Registry(), *ds, mz))
}

// datasetAnnotations reads the annotation criteria from the query string:
// database (required), offset, limit.
func (s *Server) datasetAnnotations(c *gin.Context) {
	criteria := query.AnnotationCriteria{
		Database: c.Query("database"),
		Limit:    s.cfg.DefaultLimit,
	}
	if !s.intParam(c, "offset", &criteria.Offset) || !s.intParam(c, "limit", &criteria.Limit) {
		return
	}

	out, err := s.querier.DatasetWithAnnotations(c.Request.Context(), c.Param("id"), criteria)
	if err != nil {
		if s.rejected(c, err) {
			return
		}
		s.lookupFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, DatasetAnnotationsView{
		Dataset:     newDatasetView(s.querier.Registry(), *out.Dataset, 0),
		Annotations: newAnnotationViews(out.Annotations),
	})
}

func (s *Server) listAnnotations(c *gin.Context) {
	var criteria query.AnnotationCriteria
	if !s.bind(c, &criteria) {
		return
	}
	if criteria.Limit == 0 {
		criteria.Limit = s.cfg.DefaultLimit
	}

	hits, err := s.querier.AllAnnotations(c.Request.Context(), criteria)
	if err != nil {
		if s.rejected(c, err) {
			return
		}
		s.collapse(c, err)
		c.JSON(http.StatusOK, []AnnotationView{})
		return
	}
	c.JSON(http.StatusOK, newAnnotationViews(hits))
}

func (s *Server) countAnnotations(c *gin.Context) {
	var criteria query.AnnotationCriteria
	if !s.bind(c, &criteria) {
		return
	}

	n, err := s.querier.CountAnnotations(c.Request.Context(), criteria)
	if err != nil {
		if s.rejected(c, err) {
			return
		}
		s.collapse(c, err)
		n = 0
	}
	c.JSON(http.StatusOK, CountResponse{Count: n})
}

func (s *Server) annotationByID(c *gin.Context) {
	hit, err := s.querier.Annotation(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.lookupFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, newAnnotationView(*hit))
}

func (s *Server) metadataSuggestions(c *gin.Context) {
	field := c.Query("field")
	if field == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "field is required", Field: "field"})
		return
	}

	values, err := s.querier.MetadataSuggestions(c.Request.Context(), field, c.Query("query"))
	if err != nil {
		if s.rejected(c, err) {
			return
		}
		s.collapse(c, err)
		values = nil
	}
	if values == nil {
		values = []string{}
	}
	c.JSON(http.StatusOK, values)
}

// bind decodes the JSON body into dst. An empty body leaves dst untouched.
func (s *Server) bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return false
	}
	return true
}

// rejected answers 400 for invalid criteria.
func (s *Server) rejected(c *gin.Context, err error) bool {
	if !errors.Is(err, query.ErrInvalidCriteria) {
		return false
	}

	resp := ErrorResponse{Error: err.Error()}
	var invalid *query.InvalidCriteriaError
	if errors.As(err, &invalid) {
		resp.Field = invalid.Field
	}
	c.JSON(http.StatusBadRequest, resp)
	return true
}

// collapse records an execution failure that is answered with an empty result.
func (s *Server) collapse(c *gin.Context, err error) {
	s.collapsed.WithLabelValues(c.FullPath()).Inc()
	s.logger.WarnWithContext(c.Request.Context(), "Query failed, answering with an empty result", err, map[string]interface{}{
		"route": c.FullPath(),
	})
}

// lookupFailed answers a failed single-record lookup: 404 when nothing
// matched, null otherwise.
func (s *Server) lookupFailed(c *gin.Context, err error) {
	if service.IsNotFound(err) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
		return
	}
	s.collapse(c, err)
	c.JSON(http.StatusOK, nil)
}

func (s *Server) mzParam(c *gin.Context) (float64, bool) {
	raw := c.Query("mz")
	if raw == "" {
		return 0, true
	}
	mz, err := strconv.ParseFloat(raw, 64)
	if err != nil || mz < 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "mz must be a non-negative number", Field: "mz"})
		return 0, false
	}
	return mz, true
}

func (s *Server) intParam(c *gin.Context, name string, dst *int) bool {
	raw := c.Query(name)
	if raw == "" {
		return true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: name + " must be an integer", Field: name})
		return false
	}
	*dst = v
	return true
}
