package endpoints

import (
	"time"

	"github.com/sivamani2003/accesshub/pkg/model"
)

// UserResponse represents a user in API responses, without the credential.
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// SoftwareResponse represents a catalog entry in API responses.
type SoftwareResponse struct {
	ID           uint     `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	AccessLevels []string `json:"accessLevels"`
}

// RequestResponse represents an access request in API responses, joined with
// its user and software where loaded.
type RequestResponse struct {
	ID         uint              `json:"id"`
	AccessType string            `json:"accessType"`
	Reason     string            `json:"reason"`
	Status     string            `json:"status"`
	CreatedAt  time.Time         `json:"createdAt"`
	User       *UserResponse     `json:"user,omitempty"`
	Software   *SoftwareResponse `json:"software,omitempty"`
}

func userResponse(user *model.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Role:     string(user.Role),
	}
}

func softwareResponse(software *model.Software) *SoftwareResponse {
	if software == nil {
		return nil
	}
	return &SoftwareResponse{
		ID:           software.ID,
		Name:         software.Name,
		Description:  software.Description,
		AccessLevels: software.AccessLevels,
	}
}

func requestResponse(request *model.AccessRequest) *RequestResponse {
	return &RequestResponse{
		ID:         request.ID,
		AccessType: request.AccessType,
		Reason:     request.Reason,
		Status:     string(request.Status),
		CreatedAt:  request.CreatedAt,
		User:       userResponse(request.User),
		Software:   softwareResponse(request.Software),
	}
}

func requestResponses(requests []model.AccessRequest) []*RequestResponse {
	responses := make([]*RequestResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, requestResponse(&requests[i]))
	}
	return responses
}

func softwareResponses(software []model.Software) []*SoftwareResponse {
	responses := make([]*SoftwareResponse, 0, len(software))
	for i := range software {
		responses = append(responses, softwareResponse(&software[i]))
	}
	return responses
}
