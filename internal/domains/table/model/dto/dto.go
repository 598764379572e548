package dto

import (
	gDto "travel/shared/dto"
)

type GetTablesResponse struct {
	Tables []string `json:"tables"`
}

type BrowseTableResponse struct {
	Table string `json:"table"`
	Page  int    `json:"page,omitempty"`
	Limit int    `json:"limit,omitempty"`
	gDto.Frame
}
