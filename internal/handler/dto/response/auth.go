package response

import "petboard/internal/usecase/queries"

type AuthResponse struct {
	AccessToken string               `json:"access_token"`
	Account     *queries.AccountView `json:"account"`
}

type RegisterResponse struct {
	Account *queries.AccountView `json:"account"`
}
