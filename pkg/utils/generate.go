package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

// GenerateReferenceID creates a booking reference with timestamp
func GenerateReferenceID() string {
	rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now()

	// Format: RES-YYYYMMDD-HHMMSS-RANDOM
	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := fmt.Sprintf("%04d", rand.Intn(10000))

	return fmt.Sprintf("RES-%s-%s-%s", datePart, timePart, randomPart)
}
