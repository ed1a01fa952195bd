package handlers

import (
	"log"
	"net/http"
)

// GetCars отдает справочник марок и моделей для формы мини-приложения
func (h *Handlers) GetCars(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Метод не поддерживается", http.StatusMethodNotAllowed)
		return
	}

	cars, err := h.Catalog.Cars()
	if err != nil {
		log.Printf("Ошибка чтения справочника: %v", err)
		WriteError(w, "Справочник недоступен", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, cars, http.StatusOK)
}

// HealthHandler проверяет соединение с базой
func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.HealthCheck(); err != nil {
		WriteError(w, "База данных недоступна", http.StatusServiceUnavailable)
		return
	}

	WriteSuccess(w, map[string]string{"status": "ok"}, http.StatusOK)
}
