package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/PeopleHub450/hr-kpi-dashboard/internal/kpi"
	"github.com/PeopleHub450/hr-kpi-dashboard/internal/model"
	"github.com/PeopleHub450/hr-kpi-dashboard/internal/parser"
	"github.com/PeopleHub450/hr-kpi-dashboard/internal/store"
)

// defaultUser scopes state when the client sends no X-User-ID header.
const defaultUser = "local"

const rangeDateFormat = "2006-01-02"

func userID(c *gin.Context) string {
	if id := c.GetHeader("X-User-ID"); id != "" {
		return id
	}
	return defaultUser
}

// handleUpload ingests one spreadsheet and runs its calculators. A
// parse failure marks this upload failed without touching KPIs derived
// from other files.
func (s *Server) handleUpload(c *gin.Context) {
	fileType := model.FileType(c.Param("fileType"))
	if !fileType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown file type"})
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file field"})
		return
	}
	f, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable upload"})
		return
	}
	defer f.Close()

	result, err := s.coordinator.Import(userID(c), fileType, header.Filename, f)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, parser.ErrEmptySheet) || errors.Is(err, parser.ErrNoSheets) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"status": "failed", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"result": result,
		"kpis":   kpi.MergedCatalog(result.State),
	})
}

func (s *Server) handleListFiles(c *gin.Context) {
	files, err := s.store.ListUploadedFiles(userID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if files == nil {
		files = []model.UploadedFile{}
	}
	c.JSON(http.StatusOK, files)
}

func (s *Server) handleListKPIs(c *gin.Context) {
	state, err := s.coordinator.State(userID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, kpi.MergedCatalog(state))
}

func (s *Server) handleListRanges(c *gin.Context) {
	state, err := s.coordinator.State(userID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make(map[model.RangeType]gin.H, len(model.AllRangeTypes))
	for _, t := range model.AllRangeTypes {
		window := state.Range(t)
		out[t] = gin.H{
			"startDate": window.Start.Format(rangeDateFormat),
			"endDate":   window.End.Format(rangeDateFormat),
		}
	}
	c.JSON(http.StatusOK, out)
}

type rangeRequest struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}

func (s *Server) handleSetRange(c *gin.Context) {
	rangeType := model.RangeType(c.Param("rangeType"))
	if !rangeType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown range type"})
		return
	}

	var req rangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	start, err := time.Parse(rangeDateFormat, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startDate"})
		return
	}
	end, err := time.Parse(rangeDateFormat, req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid endDate"})
		return
	}

	window := model.DateRange{Start: start, End: end}
	if err := s.coordinator.SetDateRange(userID(c), rangeType, window); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

func (s *Server) handleGetCharts(c *gin.Context) {
	charts, err := s.store.GetChartData(userID(c))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no chart data"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, charts)
}

func (s *Server) handleReset(c *gin.Context) {
	if err := s.coordinator.Reset(userID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}
