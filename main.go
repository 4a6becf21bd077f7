package main

import "github.com/torbjornhedqvist/xlsxcalendar/internal/cli"

func main() {
	cli.Execute()
}
