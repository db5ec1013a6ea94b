package fakers

import (
	"fmt"
	"math/rand"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/hocinedev/dzshop/app/models"
)

var categoryNames = []string{"Robes", "Hijabs", "Abayas", "Chaussures", "Accessoires", "Sacs"}

func CategoryFaker() *models.Category {
	name := categoryNames[rand.Intn(len(categoryNames))]
	description := faker.Sentence()
	image := fmt.Sprintf("/images/categories/%s.jpg", uuid.NewString()[:8])

	return &models.Category{
		ID:          uuid.New().String(),
		Name:        name,
		Description: &description,
		Image:       &image,
	}
}
