package dto

import "toolbox/pkg/passgen"

// AssessPasswordRequest представляет запрос на оценку пароля.
// Пустой пароль допустим и дает нулевую оценку.
type AssessPasswordRequest struct {
	Password string `json:"password" validate:"max=1024"`
}

// GeneratePasswordRequest представляет запрос на генерацию пароля.
// Указатели позволяют отличить отсутствующий флаг (true) от явного false.
type GeneratePasswordRequest struct {
	Length    int   `json:"length" validate:"omitempty,min=4,max=128"`
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Numbers   *bool `json:"numbers"`
	Symbols   *bool `json:"symbols"`
}

// Options переводит запрос в параметры генератора.
func (r *GeneratePasswordRequest) Options() passgen.Options {
	return passgen.Options{
		Length:  r.Length,
		Upper:   flag(r.Uppercase),
		Lower:   flag(r.Lowercase),
		Numbers: flag(r.Numbers),
		Symbols: flag(r.Symbols),
	}
}

func flag(v *bool) bool {
	return v == nil || *v
}

// GeneratePasswordResponse содержит сгенерированный пароль.
type GeneratePasswordResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
}
