package dto

import (
	"travel/internal/domains/report/model"
	gDto "travel/shared/dto"
)

type ParamResponse struct {
	Name    string `json:"name"`
	Label   string `json:"label"`
	Kind    string `json:"kind"`
	Default string `json:"default"`
}

type ReportResponse struct {
	Slug   string          `json:"slug"`
	Title  string          `json:"title"`
	Params []ParamResponse `json:"params"`
}

func (r *ReportResponse) FromModel(report model.Report) {
	r.Slug = report.Slug
	r.Title = report.Title

	r.Params = make([]ParamResponse, len(report.Params))
	for i, param := range report.Params {
		r.Params[i] = ParamResponse{Name: param.Name, Label: param.Label, Kind: param.Kind, Default: param.Default}
	}
}

type ListReportsResponse struct {
	Reports []ReportResponse `json:"reports"`
}

func (r *ListReportsResponse) FromModels(reports []model.Report) {
	r.Reports = make([]ReportResponse, len(reports))
	for i, report := range reports {
		r.Reports[i].FromModel(report)
	}
}

// RunReportResponse carries the frame inline, next to the values the
// parameters resolved to.
type RunReportResponse struct {
	Slug   string            `json:"slug"`
	Title  string            `json:"title"`
	Params map[string]string `json:"params"`
	gDto.Frame
}

type ExportReportResponse struct {
	Slug string `json:"slug"`
	URL  string `json:"url"`
	Rows int    `json:"rows"`
}
