package request

type CreateClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address" binding:"required"`
}

type CreateEngineerRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email"`
	Available bool   `json:"available"`
}

type EngineerAvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}
