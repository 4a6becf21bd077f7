// Command holidaygen writes a holiday YAML file consumable through the
// calendar configuration's holiday_imports list.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type holidayFile struct {
	Holidays map[string]string `yaml:"holidays"`
}

func main() {
	year := flag.Int("year", time.Now().Year(), "First year to generate holidays for")
	years := flag.Int("years", 1, "Number of consecutive years")
	output := flag.String("output", "", "Output file, stdout when empty")
	flag.Parse()

	if *years < 1 {
		log.Fatal("years must be at least 1")
	}

	merged := map[string]string{}
	for y := *year; y < *year+*years; y++ {
		for date, note := range swedishHolidays(y) {
			merged[date] = note
		}
	}

	data, err := yaml.Marshal(holidayFile{Holidays: merged})
	if err != nil {
		log.Fatal(err)
	}

	if *output == "" {
		fmt.Print(string(data))
		return
	}
	if err := os.WriteFile(*output, data, 0o644); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Wrote %d holidays to %s\n", len(merged), *output)
}
