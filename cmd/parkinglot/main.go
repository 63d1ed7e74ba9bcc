package main

import "github.com/Sixteen1-6/ParkingLot/internal/cli"

func main() {
	cli.Execute()
}
