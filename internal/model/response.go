package model

// APIResponse представляет единый формат ответа API
// Все исходы операций (успех и ошибка) сериализуются в эту форму на границе HTTP;
// Data заполняется только на успешных путях, возвращающих производные значения
type APIResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}
