package dto

import "github.com/marcus024/ssu-alumni-tracker/internal/model"

type UpdateStatusInput struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected"`
}

type GraduateListQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=pending approved rejected"`
}

type GraduateResponse struct {
	Graduate *model.GraduateProfile `json:"graduate"`
}

type SyncSummaryResponse struct {
	Processed     int `json:"processed"`
	Synced        int `json:"synced"`
	AlreadyInSync int `json:"already_in_sync"`
	NotFound      int `json:"not_found"`
	Failed        int `json:"failed"`
}
