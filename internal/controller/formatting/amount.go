package formatting

import "fmt"

// FormatAmount форматирует сумму из центов в доллары
func FormatAmount(amountInCents int64) string {
	amount := float64(amountInCents) / 100
	return fmt.Sprintf("$%.2f", amount)
}

// FormatAmountShort форматирует сумму без центов если они равны 0
func FormatAmountShort(amountInCents int64) string {
	amount := float64(amountInCents) / 100
	if amountInCents%100 == 0 {
		return fmt.Sprintf("$%.0f", amount)
	}
	return fmt.Sprintf("$%.2f", amount)
}
