package utils

import (
	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

func GenerateBookingID() string {
	return uuid.NewString()
}

func GenerateMeetingRef() string {
	return "meet-" + uuid.NewString()
}
