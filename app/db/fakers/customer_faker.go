package fakers

import (
	"math/rand"

	"github.com/go-faker/faker/v4"
	"github.com/hocinedev/dzshop/app/models"
)

var wilayas = []string{"Alger", "Oran", "Constantine", "Annaba", "Blida", "Sétif", "Tlemcen"}

func CustomerFaker() *models.Customer {
	return &models.Customer{
		Name:        faker.Name(),
		PhoneNumber: faker.Phonenumber(),
		Wilaya:      wilayas[rand.Intn(len(wilayas))],
		Commune:     faker.Word(),
		Address:     faker.Sentence(),
	}
}
