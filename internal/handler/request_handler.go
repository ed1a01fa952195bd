package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"autoquotes/internal/auth"
	"autoquotes/internal/service"
)

const maxPhotos = 3

type createRequestForm struct {
	Brand       string `validate:"required,max=100"`
	Model       string `validate:"required,max=100"`
	Year        int    `validate:"required,gte=1950,lte=2100"`
	Description string `validate:"required,max=2000"`
	PartType    string `validate:"required"`
}

type createRequestResponse struct {
	OK        bool  `json:"ok"`
	RequestID int64 `json:"request_id"`
}

// CreateRequest принимает multipart-форму мини-приложения.
// Личность берется только из подписанного init_data, поля формы
// на авторство не влияют.
func (h *Handlers) CreateRequest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Метод не поддерживается", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Некорректная форма", http.StatusBadRequest)
		return
	}

	initData := r.FormValue("init_data")
	if initData == "" {
		WriteError(w, "Пустой init_data", http.StatusForbidden)
		return
	}

	webAppUser, err := auth.ValidateInitData(initData, h.Cfg.Bot.Token)
	if err != nil {
		log.Printf("Недействительный init_data: %v", err)
		WriteError(w, "Недействительный init_data", http.StatusForbidden)
		return
	}

	year, err := strconv.Atoi(r.FormValue("year"))
	if err != nil {
		WriteError(w, "Некорректный год", http.StatusBadRequest)
		return
	}

	form := createRequestForm{
		Brand:       r.FormValue("brand"),
		Model:       r.FormValue("model"),
		Year:        year,
		Description: r.FormValue("description"),
		PartType:    r.FormValue("part_type"),
	}

	if err := h.Validate.Struct(form); err != nil {
		WriteError(w, "Некорректные данные формы: "+err.Error(), http.StatusBadRequest)
		return
	}

	photoRefs, err := h.uploadPhotos(r)
	if err != nil {
		log.Printf("Ошибка загрузки фото: %v", err)
		WriteError(w, "Не удалось сохранить фото", http.StatusInternalServerError)
		return
	}

	req, err := h.RequestService.CreateRequest(r.Context(), service.CreateRequestInput{
		TelegramID:  webAppUser.ID,
		Brand:       form.Brand,
		Model:       form.Model,
		Year:        form.Year,
		Description: form.Description,
		PartType:    form.PartType,
		PhotoRefs:   photoRefs,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAuthorization):
			WriteError(w, "Пользователь не найден или не является клиентом", http.StatusForbidden)
		case errors.Is(err, service.ErrValidation):
			WriteError(w, "Некорректный тип запчасти", http.StatusBadRequest)
		default:
			log.Printf("Ошибка создания запроса: %v", err)
			WriteError(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, createRequestResponse{OK: true, RequestID: req.ID}, http.StatusCreated)
}

// uploadPhotos сохраняет не более трех фото из формы, лишние молча
// отбрасываются. Фото грузятся до создания запроса, поэтому группируются
// по одноразовому ref, а не по id запроса
func (h *Handlers) uploadPhotos(r *http.Request) ([]string, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}

	files := r.MultipartForm.File["photos"]
	if len(files) > maxPhotos {
		files = files[:maxPhotos]
	}

	ref := uuid.New().String()
	refs := make([]string, 0, len(files))

	for _, fh := range files {
		if fh.Filename == "" {
			continue
		}

		file, err := fh.Open()
		if err != nil {
			return nil, err
		}

		objectName, err := h.Storage.UploadPhoto(r.Context(), ref, fh.Filename, file, fh.Size)
		file.Close()
		if err != nil {
			return nil, err
		}

		refs = append(refs, objectName)
	}

	return refs, nil
}
