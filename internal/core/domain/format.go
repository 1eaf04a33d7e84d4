package domain

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usdPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatPrice форматирует сумму в долларах без копеек: 1850 -> "$1,850".
func FormatPrice(price int) string {
	if price < 0 {
		return "-" + usdPrinter.Sprintf("$%d", -price)
	}
	return usdPrinter.Sprintf("$%d", price)
}

func FormatAddress(address, city, state, zipCode string) string {
	return fmt.Sprintf("%s, %s, %s %s", address, city, state, zipCode)
}
