package main

import (
	"encoding/csv"
	"log"
	"os"
	"strconv"

	"github.com/parquet-go/parquet-go"
)

type Product struct {
	ID    int64   `parquet:"id"`
	Name  string  `parquet:"name"`
	Price float64 `parquet:"price"`
	Stock int64   `parquet:"stock"`
}

func main() {
	products := []Product{
		{ID: 1, Name: "apple", Price: 50, Stock: 120},
		{ID: 2, Name: "banana", Price: 150, Stock: 45},
		{ID: 3, Name: "cherry", Price: 100, Stock: 80},
		{ID: 4, Name: "date", Price: 75, Stock: 0},
		{ID: 5, Name: "elderberry", Price: 210, Stock: 12},
	}

	writeCSV(products)
	writeParquet(products)
}

func writeCSV(products []Product) {
	file, err := os.Create("products.csv")
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"id", "name", "price", "stock"}); err != nil {
		log.Fatal(err)
	}
	for _, p := range products {
		record := []string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			strconv.FormatFloat(p.Price, 'g', -1, 64),
			strconv.FormatInt(p.Stock, 10),
		}
		if err := w.Write(record); err != nil {
			log.Fatal(err)
		}
	}

	log.Println("Generated products.csv with 5 products")
}

func writeParquet(products []Product) {
	file, err := os.Create("products.parquet")
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[Product](file)
	defer writer.Close()

	if _, err := writer.Write(products); err != nil {
		log.Fatal(err)
	}

	log.Println("Generated products.parquet with 5 products")
}
