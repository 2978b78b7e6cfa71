package dto

type CredentialsRequestDTO struct {
	Login    string `json:"login" example:"student"`
	Password string `json:"password" example:"s3cret-pass"`
}

type AuthResponseDTO struct {
	Message string `json:"message" example:"User successfully registered"`
	Token   string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9"`
}
