package main

import (
	"fmt"
	"log"

	"github.com/gurre/sidim"
)

func main() {
	massFlow, err := sidim.ParseScalar("2.5 kg/s")
	if err != nil {
		log.Fatal(err)
	}
	specificHeat, err := sidim.ParseScalar("4186 J/(kg•K)")
	if err != nil {
		log.Fatal(err)
	}
	tempDiff, err := sidim.ParseScalar("15 K")
	if err != nil {
		log.Fatal(err)
	}

	rate, err := sidim.MultiplyScalars(massFlow, specificHeat)
	if err != nil {
		log.Fatal(err)
	}
	heatRate, err := sidim.MultiplyScalars(rate, tempDiff)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("Heat exchange rate:", heatRate)
}
