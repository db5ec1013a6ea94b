package fakers

import (
	"math/rand"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/hocinedev/dzshop/app/models"
	"github.com/shopspring/decimal"
)

var (
	colorOptions = []string{"Noir", "Blanc", "Beige", "Bordeaux", "Bleu"}
	sizeOptions  = []string{"S", "M", "L", "XL"}
)

func ProductFaker(category *models.Category) *models.Product {
	productID := uuid.New().String()
	price := fakePrice()

	product := &models.Product{
		ID:               productID,
		Name:             faker.Name(),
		Price:            price,
		Stock:            rand.Intn(20) + 1,
		ShortDescription: faker.Sentence(),
		LongDescription:  faker.Paragraph(),
		Images: []string{
			"/images/products/" + productID[:8] + "-1.jpg",
			"/images/products/" + productID[:8] + "-2.jpg",
		},
		Colors: pick(colorOptions, rand.Intn(3)+1),
		Sizes:  pick(sizeOptions, rand.Intn(3)+1),
	}
	if category != nil {
		product.CategoryID = &category.ID
	}

	// Roughly a third of products show a crossed-out previous price.
	if rand.Intn(3) == 0 {
		product.OldPrice = decimal.NewNullDecimal(price.Add(decimal.NewFromInt(int64(rand.Intn(2000) + 500))))
	}
	return product
}

func fakePrice() decimal.Decimal {
	return decimal.NewFromInt(int64(rand.Intn(195)+5) * 100)
}

func pick(options []string, n int) []string {
	if n > len(options) {
		n = len(options)
	}
	out := make([]string, 0, n)
	for _, i := range rand.Perm(len(options))[:n] {
		out = append(out, options[i])
	}
	return out
}
