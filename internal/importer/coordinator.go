// Package importer coordinates one upload cycle: decode the workbook,
// resolve the target sheet, run the file type's calculators, merge the
// results into the session state and persist each change.
package importer

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/PeopleHub450/hr-kpi-dashboard/internal/kpi"
	"github.com/PeopleHub450/hr-kpi-dashboard/internal/model"
	"github.com/PeopleHub450/hr-kpi-dashboard/internal/parser"
	"github.com/PeopleHub450/hr-kpi-dashboard/internal/store"
)

// Coordinator runs upload cycles against one store.
type Coordinator struct {
	store *store.Store
	log   *logrus.Logger
}

// NewCoordinator creates a coordinator.
func NewCoordinator(st *store.Store, log *logrus.Logger) *Coordinator {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Coordinator{store: st, log: log}
}

// Result summarizes one successful upload cycle.
type Result struct {
	ImportID    string              `json:"importId"`
	FileType    model.FileType      `json:"fileType"`
	FileName    string              `json:"fileName"`
	RowCount    int                 `json:"rowCount"`
	SheetName   string              `json:"sheetName"`
	FellBack    bool                `json:"fellBack"`
	UpdatedKPIs []string            `json:"updatedKpis"`
	State       *model.SessionState `json:"-"`
}

// Import runs one upload cycle. A parse failure leaves the persisted
// state for this file type untouched; calculators that report their
// result unavailable keep the previous value rather than writing a
// misleading number.
func (c *Coordinator) Import(userID string, fileType model.FileType, fileName string, content io.Reader) (*Result, error) {
	if !fileType.Valid() {
		return nil, fmt.Errorf("unknown file type %q", fileType)
	}

	importID := uuid.New().String()
	log := c.log.WithFields(logrus.Fields{
		"importId": importID,
		"user":     userID,
		"fileType": fileType,
		"fileName": fileName,
	})
	log.Info("import started")

	state, err := c.store.LoadSession(userID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	// decoding is offloaded but always awaited before calculation
	type decoded struct {
		wb  *model.Workbook
		err error
	}
	ch := make(chan decoded, 1)
	go func() {
		wb, err := parser.LoadWorkbook(content)
		ch <- decoded{wb, err}
	}()
	dec := <-ch
	if dec.err != nil {
		log.WithError(dec.err).Error("workbook decode failed")
		return nil, fmt.Errorf("decode workbook: %w", dec.err)
	}

	result := &Result{ImportID: importID, FileType: fileType, FileName: fileName}
	updated, err := c.calculate(state, fileType, dec.wb, result, log)
	if err != nil {
		log.WithError(err).Error("calculation failed")
		return nil, err
	}

	// persistence writes are independent upserts; a failure is logged
	// and does not roll back the in-memory state
	for _, name := range updated {
		if err := c.persistKPI(userID, name, state.KPIs[name]); err != nil {
			log.WithError(err).WithField("kpi", name).Warn("kpi save failed")
		}
	}

	file := model.UploadedFile{
		FileType:   fileType,
		FileName:   fileName,
		RowCount:   result.RowCount,
		UploadedAt: nowUTC(),
	}
	if err := c.store.UpsertUploadedFile(userID, file); err != nil {
		log.WithError(err).Warn("file metadata save failed")
	}
	state.Files[fileType] = file

	// charts are always written on an EDM upload, even when empty, so a
	// re-upload with no active employees replaces stale chart rows
	if fileType == model.FileEDMReport {
		if err := c.store.UpsertChartData(userID, state.Charts); err != nil {
			log.WithError(err).Warn("chart data save failed")
		}
	}

	result.UpdatedKPIs = updated
	result.State = state
	log.WithFields(logrus.Fields{
		"rows": result.RowCount,
		"kpis": updated,
	}).Info("import finished")
	return result, nil
}

// calculate resolves the sheet(s) for the file type, runs its
// calculators and merges available results into state. Returns the KPI
// names whose values changed.
func (c *Coordinator) calculate(state *model.SessionState, fileType model.FileType, wb *model.Workbook, result *Result, log *logrus.Entry) ([]string, error) {
	if fileType == model.FileTalentXData {
		return c.calculateTalentX(state, wb, result)
	}

	resolution, err := parser.ResolveSheet(wb, model.ExpectedSheet[fileType], fileType)
	if err != nil {
		return nil, fmt.Errorf("resolve sheet: %w", err)
	}
	if resolution.FellBack {
		log.WithFields(logrus.Fields{
			"sheet":    resolution.SheetName,
			"strategy": resolution.Strategy,
		}).Warn("requested sheet absent, fell back")
	}
	result.SheetName = resolution.SheetName
	result.FellBack = resolution.FellBack

	rows, err := parser.SheetRows(wb, resolution.SheetName)
	if err != nil {
		return nil, err
	}
	result.RowCount = len(rows)

	switch fileType {
	case model.FileEDMReport:
		return calculateEDM(state, rows), nil
	case model.FileRecruitmentTracker:
		return calculateRecruitment(state, rows), nil
	case model.FileENPSSurvey:
		return calculateSurvey(state, rows), nil
	case model.FileLinkedInLearnerDetail:
		return calculateLearnerDetail(state, rows), nil
	case model.FileLinkedInLearning:
		return calculateLearning(state, rows), nil
	case model.FileLinkedInFollowers:
		return calculateEngagementMetric(state, rows, metricFollowers), nil
	case model.FileLinkedInVisitors:
		return calculateEngagementMetric(state, rows, metricPageViews), nil
	case model.FileLinkedInContent:
		return calculateEngagementMetric(state, rows, metricImpressions), nil
	default:
		return nil, fmt.Errorf("no calculators for file type %q", fileType)
	}
}

// calculateTalentX reads the two related sheets of a TalentX workbook.
func (c *Coordinator) calculateTalentX(state *model.SessionState, wb *model.Workbook, result *Result) ([]string, error) {
	employeeRes, err := parser.ResolveSheet(wb, model.TalentXEmployeeSheet, model.FileTalentXData)
	if err != nil {
		return nil, fmt.Errorf("resolve employee sheet: %w", err)
	}
	masterRes, err := parser.ResolveSheet(wb, model.TalentXMasterSheet, model.FileTalentXData)
	if err != nil {
		return nil, fmt.Errorf("resolve master sheet: %w", err)
	}

	employeeRows, err := parser.SheetRows(wb, employeeRes.SheetName)
	if err != nil {
		return nil, err
	}
	masterRows, err := parser.SheetRows(wb, masterRes.SheetName)
	if err != nil {
		return nil, err
	}

	result.SheetName = employeeRes.SheetName
	result.FellBack = employeeRes.FellBack || masterRes.FellBack
	result.RowCount = len(employeeRows) + len(masterRows)

	stats := kpi.BotnosticMetrics(employeeRows, masterRows)
	state.KPIs[model.KPIBotnosticSolutions] = model.KPIValue{Kind: model.ValueBotnostic, Botnostic: &stats}
	return []string{model.KPIBotnosticSolutions}, nil
}

// persistKPI writes one KPI as a (numeric, metadata) pair.
func (c *Coordinator) persistKPI(userID, name string, value model.KPIValue) error {
	record := store.KPIRecord{Name: name}
	if value.IsScalar() {
		v := value.Scalar
		record.Value = &v
	} else {
		metadata, err := value.MarshalMetadata()
		if err != nil {
			return fmt.Errorf("encode %s metadata: %w", name, err)
		}
		record.Metadata = metadata
	}
	return c.store.UpsertKPI(userID, record)
}

// State loads the user's session state.
func (c *Coordinator) State(userID string) (*model.SessionState, error) {
	return c.store.LoadSession(userID)
}

// SetDateRange persists a named date-range selection. Dependent KPIs
// are recomputed on the next upload of their source file.
func (c *Coordinator) SetDateRange(userID string, rangeType model.RangeType, window model.DateRange) error {
	if !rangeType.Valid() {
		return fmt.Errorf("unknown range type %q", rangeType)
	}
	if window.End.Before(window.Start) {
		return fmt.Errorf("range end before start")
	}
	return c.store.UpsertDateRange(userID, rangeType, window)
}

// Reset wipes all persisted state for the user.
func (c *Coordinator) Reset(userID string) error {
	c.log.WithField("user", userID).Info("clearing all user data")
	return c.store.ClearAll(userID)
}
