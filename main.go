package main

import "github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/cmd"

func main() {
	cmd.Execute()
}
