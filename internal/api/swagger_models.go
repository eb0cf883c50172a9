package api

// This file contains model definitions for Swagger documentation

// PanelRequest is the body of a panel submission; upload reads url, ad-creatives reads file_path
// @Description Panel request payload
type PanelRequest struct {
	URL      string `json:"url,omitempty" example:"https://www.youtube.com/watch?v=dQw4w9WgXcQ"` // YouTube URL (upload)
	FilePath string `json:"file_path,omitempty" example:"/videos/demo.mp4"`                      // Local video path (ad-creatives)
}

// ThemeResponse is the result of a theme toggle
// @Description Theme toggle response
type ThemeResponse struct {
	Theme     string `json:"theme" example:"dark"`      // Stored preference
	RootClass string `json:"root_class" example:"dark"` // Class applied to the document root
}

// ErrorResponse represents an error response
// @Description Error response
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`       // Success status
	Error   string `json:"error" example:"Error message"` // Error message
}

// SuccessResponse represents a success response
// @Description Success response
type SuccessResponse struct {
	Success bool        `json:"success" example:"true"` // Success status
	Data    interface{} `json:"data"`                   // Response data
}
