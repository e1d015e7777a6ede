package dto

// RomanEncodeRequest представляет запрос на запись числа римскими цифрами.
type RomanEncodeRequest struct {
	Number *int `json:"number" validate:"required"`
}

// RomanNumeralResponse содержит число и его римскую запись.
type RomanNumeralResponse struct {
	Number  int    `json:"number"`
	Numeral string `json:"numeral"`
}

// RomanDecodeRequest представляет запрос на разбор римского числа.
type RomanDecodeRequest struct {
	Numeral string `json:"numeral" validate:"required,max=32"`
}

// RomanDateEncodeRequest представляет дату для записи римскими цифрами.
type RomanDateEncodeRequest struct {
	Day   *int `json:"day" validate:"required"`
	Month *int `json:"month" validate:"required"`
	Year  *int `json:"year" validate:"required"`
}

// RomanDateDecodeRequest представляет запрос на разбор даты вида XXX.IV.MMXXIII.
type RomanDateDecodeRequest struct {
	Date string `json:"date" validate:"required,max=64"`
}

// RomanDateResponse содержит дату в обоих представлениях.
type RomanDateResponse struct {
	Date  string `json:"date"`
	Day   int    `json:"day"`
	Month int    `json:"month"`
	Year  int    `json:"year"`
}
