package users

import "codeberg.org/reclaim/server/reclaim/users"

type MeResponse struct {
	User *users.User `json:"user"`
}

type UpdateResponse struct {
	Message string      `json:"message"`
	User    *users.User `json:"user"`
}

type ProfileResponse struct {
	User *users.Profile `json:"user"`
}
