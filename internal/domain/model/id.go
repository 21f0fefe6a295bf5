package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// IDはどのストアでも24桁hexのObjectID形式。
func NewID() string {
	return primitive.NewObjectID().Hex()
}

func IsValidID(id string) bool {
	return primitive.IsValidObjectID(id)
}
