// Package content provides the fixed seed data shown by the app: loading
// screen facts, community posts, sample products and the account defaults.
package content

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"sproutly/internal/models"
)

//go:embed content.yaml
var seedData []byte

type product struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Price string `yaml:"price"`
	Image string `yaml:"image"`
}

type profile struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

type document struct {
	Brand    string        `yaml:"brand"`
	Facts    []string      `yaml:"facts"`
	Posts    []models.Post `yaml:"posts"`
	Products []product     `yaml:"products"`
	Profile  profile       `yaml:"profile"`
	History  []string      `yaml:"history"`
}

// Content is the parsed seed document
type Content struct {
	Brand    string
	Facts    []string
	Posts    []models.Post
	Products []models.Listing
	Profile  models.Profile
	History  []string
}

var (
	loadOnce sync.Once
	loaded   Content
	loadErr  error
)

// Parse decodes a seed document
func Parse(data []byte) (Content, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Content{}, fmt.Errorf("parse seed content: %w", err)
	}
	if doc.Brand == "" {
		return Content{}, fmt.Errorf("seed content: brand is empty")
	}
	if len(doc.Facts) == 0 {
		return Content{}, fmt.Errorf("seed content: no facts")
	}

	c := Content{
		Brand:   doc.Brand,
		Facts:   doc.Facts,
		Posts:   doc.Posts,
		Profile: models.Profile{Name: doc.Profile.Name, Email: doc.Profile.Email},
		History: doc.History,
	}
	for _, p := range doc.Products {
		c.Products = append(c.Products, models.Listing{
			ID:         p.ID,
			Name:       p.Name,
			Price:      p.Price,
			ImageLabel: p.Image,
		})
	}
	return c, nil
}

// Load returns the embedded seed content, parsed once
func Load() (Content, error) {
	loadOnce.Do(func() {
		loaded, loadErr = Parse(seedData)
	})
	return loaded, loadErr
}

// MustLoad is Load for callers that treat a broken embed as a programming error
func MustLoad() Content {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}
