package tests

import (
	"context"
	"log"
	"math/rand/v2"
	"os"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/jmholzer/outvoice-api/core"
	"github.com/jmholzer/outvoice-api/postgres"
	"github.com/joho/godotenv"
)

var Faker = gofakeit.New(rand.Uint64())

// DB connects to the database in the DATABASE_URL env variable and migrates
// it. Tests that need a real database are skipped when it is not set.
func DB(t *testing.T) *postgres.DB {
	t.Helper()
	ctx := context.Background()
	err := godotenv.Load("../.env")
	if err != nil {
		log.Printf("Could not load the .env file: %v", err)
	}
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("To test database functionality, set the DATABASE_URL env variable to a valid database")
	}
	db, err := postgres.NewDB(ctx, url)
	if err != nil {
		t.Fatalf("Cannot connect to the test database: %v", err)
	}

	if err = db.Migrate(ctx); err != nil {
		t.Fatalf("Cannot migrate the test database: %v", err)
	}

	return db
}

func Ptr(s string) *string {
	return &s
}

// FakeAddressData generates a random, fully-populated address payload.
func FakeAddressData() core.AddressData {
	fakeAddress := Faker.Address()
	return core.AddressData{
		FirstName:    Ptr(Faker.FirstName()),
		LastName:     Ptr(Faker.LastName()),
		AddressLine1: Ptr(fakeAddress.Street),
		AddressLine2: Ptr("Unit " + Faker.DigitN(3)),
		City:         Ptr(fakeAddress.City),
		PostCode:     Ptr(fakeAddress.Zip),
	}
}

func DeleteAllAddresses(store core.AddressStore) {
	ctx := context.Background()
	addresses, err := store.ListAddresses(ctx)
	Check(err)
	for _, address := range addresses {
		Check(store.DeleteAddress(ctx, address.ID))
	}
}

func Check(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
