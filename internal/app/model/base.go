package model

import "github.com/google/uuid"

func ensureID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}
