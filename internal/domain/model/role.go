package model

type Role string

const (
	RoleUser  Role = "User"
	RoleAdmin Role = "Admin"
)
