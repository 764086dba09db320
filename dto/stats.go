package dto

import "github.com/focusflow-app/focusflow_api/tracker"

type TodayStatsResponse struct {
	Date  string             `json:"date"`
	Stats tracker.TodayStats `json:"stats"`
}

type HeatmapResponse struct {
	StartDate string                  `json:"start_date"`
	EndDate   string                  `json:"end_date"`
	Days      []tracker.DailyActivity `json:"days"`
}

type ExportResponse struct {
	ObjectName  string `json:"object_name"`
	DownloadURL string `json:"download_url"`
	ExpiresIn   int64  `json:"expires_in"`
	SizeBytes   int    `json:"size_bytes"`
}
