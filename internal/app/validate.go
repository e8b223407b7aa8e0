package app

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/blackwell-systems/bookshopctl/internal/api"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateEmail checks the address shape before we spend a network round trip.
func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("email is required")
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("invalid email address: %s", email)
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}
	return nil
}

func validateUsername(username string) error {
	if len(strings.TrimSpace(username)) < 3 {
		return fmt.Errorf("username must be at least 3 characters")
	}
	return nil
}

const (
	maxTitleLen       = 200
	maxWriterLen      = 100
	maxPublisherLen   = 100
	maxDescriptionLen = 1000
	minPublicationYr  = 1900
	maxStockQuantity  = 10000
)

// validateBook checks a payload before create or update. The server enforces
// the same rules; failing here gives the user a message without a round trip.
func validateBook(p api.BookPayload) error {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLen {
		return fmt.Errorf("title must be at most %d characters", maxTitleLen)
	}

	writer := strings.TrimSpace(p.Writer)
	if writer == "" {
		return fmt.Errorf("writer is required")
	}
	if len(writer) > maxWriterLen {
		return fmt.Errorf("writer must be at most %d characters", maxWriterLen)
	}

	publisher := strings.TrimSpace(p.Publisher)
	if publisher == "" {
		return fmt.Errorf("publisher is required")
	}
	if len(publisher) > maxPublisherLen {
		return fmt.Errorf("publisher must be at most %d characters", maxPublisherLen)
	}

	maxYear := time.Now().Year()
	if p.PublicationYear < minPublicationYr || p.PublicationYear > maxYear {
		return fmt.Errorf("publication year must be between %d and %d", minPublicationYr, maxYear)
	}

	if err := validatePriceString(p.Price); err != nil {
		return err
	}

	if p.StockQuantity < 0 || p.StockQuantity > maxStockQuantity {
		return fmt.Errorf("stock quantity must be between 0 and %d", maxStockQuantity)
	}

	if p.GenreID == "" {
		return fmt.Errorf("genre is required")
	}

	desc := strings.TrimSpace(p.Description)
	if desc == "" {
		return fmt.Errorf("description is required")
	}
	if len(desc) > maxDescriptionLen {
		return fmt.Errorf("description must be at most %d characters", maxDescriptionLen)
	}

	return nil
}

// validatePriceString accepts the scaled wire format: a positive integer or
// decimal string, e.g. "50000" for $5.00.
func validatePriceString(price string) error {
	price = strings.TrimSpace(price)
	if price == "" {
		return fmt.Errorf("price is required")
	}
	v, err := strconv.ParseFloat(price, 64)
	if err != nil {
		return fmt.Errorf("price must be a number, got %q", price)
	}
	if v <= 0 {
		return fmt.Errorf("price must be positive")
	}
	return nil
}
