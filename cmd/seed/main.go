package main

import (
	"fmt"
	"log"

	"bedboard/config"
	"bedboard/infras/postgres"
	"bedboard/shared/constant"
	"bedboard/shared/timezone"

	"github.com/google/uuid"
)

const seedActor = "seed"

type wardLayout struct {
	ward   string
	prefix string
	first  int
	count  int
}

// Ward layouts mirror the physical numbering: ICU on the 100 block, General
// on the 200 block, Emergency on the 300 block.
var layouts = []wardLayout{
	{ward: constant.WardICU, prefix: "ICU", first: 101, count: 10},
	{ward: constant.WardGeneral, prefix: "GEN", first: 201, count: 20},
	{ward: constant.WardEmergency, prefix: "ER", first: 301, count: 15},
}

func main() {
	cfg := config.Get()

	db := postgres.New(cfg)
	if db.Write == nil {
		log.Fatal("could not connect to database")
	}

	query := `INSERT INTO beds (id, bed_code, ward, status, version, created_at, modified_at, created_by, modified_by)
		VALUES ($1, $2, $3, 'available', 0, $4, $4, $5, $5)
		ON CONFLICT (bed_code) DO NOTHING`

	now := timezone.Now()
	inserted := 0

	for _, layout := range layouts {
		for i := range layout.count {
			bedCode := fmt.Sprintf("%s-%d", layout.prefix, layout.first+i)

			res, err := db.Write.Exec(query, uuid.NewString(), bedCode, layout.ward, now, seedActor)
			if err != nil {
				log.Fatalf("failed to seed bed %s: %v", bedCode, err)
			}

			if affected, err := res.RowsAffected(); err == nil && affected > 0 {
				inserted++
			}
		}
	}

	log.Printf("seeded %d new beds", inserted)
}
