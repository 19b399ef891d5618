package validators

import "strings"

// IsCPFValid confere os dois dígitos verificadores do CPF. Aceita o número
// com ou sem máscara (000.000.000-00).
func IsCPFValid(cpf string) bool {
	digits := make([]int, 0, 11)
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		}
	}

	if len(digits) != 11 {
		return false
	}

	// Sequências repetidas (000..., 111...) passam no cálculo mas são inválidas
	if strings.Count(onlyDigits(cpf), string(rune('0'+digits[0]))) == 11 {
		return false
	}

	if checkDigit(digits[:9], 10) != digits[9] {
		return false
	}
	if checkDigit(digits[:10], 11) != digits[10] {
		return false
	}

	return true
}

func checkDigit(digits []int, startWeight int) int {
	sum := 0
	for i, d := range digits {
		sum += d * (startWeight - i)
	}

	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
