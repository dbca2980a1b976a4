package routes

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/Joeseb100/realprops/storage"
	"github.com/Joeseb100/realprops/utils"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/kataras/iris/v12"
)

const maxUploadMemory = 32 << 20

type UploadHandler struct {
	Blob storage.BlobStore
}

func NewUploadHandler(blob storage.BlobStore) *UploadHandler {
	return &UploadHandler{Blob: blob}
}

// Upload accepts one or more image files under the "files" multipart key
// and returns their public URLs. Files are pushed sequentially; the first
// blob store failure aborts the rest, and already stored files stay stored.
func (h *UploadHandler) Upload(ctx iris.Context) {
	if err := ctx.Request().ParseMultipartForm(maxUploadMemory); err != nil {
		utils.JSONError(ctx, iris.StatusBadRequest, "invalid_payload", "multipart form expected")
		return
	}

	form := ctx.Request().MultipartForm
	files := form.File["files"]
	if len(files) == 0 {
		utils.JSONError(ctx, iris.StatusBadRequest, "no_files", "No files provided")
		return
	}

	urls := make([]string, 0, len(files))
	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			utils.JSONError(ctx, iris.StatusInternalServerError, "upload_failed", err.Error())
			return
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			utils.JSONError(ctx, iris.StatusInternalServerError, "upload_failed", err.Error())
			return
		}

		mtype := mimetype.Detect(data)
		if !strings.HasPrefix(mtype.String(), "image/") {
			utils.JSONError(ctx, iris.StatusBadRequest, "invalid_file", "only image uploads are accepted")
			return
		}

		url, err := h.Blob.Put(safeObjectName(header.Filename, mtype.Extension()), data, mtype.String())
		if err != nil {
			utils.JSONError(ctx, iris.StatusInternalServerError, "upload_failed", "Image upload failed")
			return
		}
		urls = append(urls, url)
	}

	ctx.JSON(iris.Map{"urls": urls})
}

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// safeObjectName turns a client filename into a collision-resistant stored
// name: path-safe transform plus a millisecond timestamp prefix. Files that
// arrive without a usable name get a random one.
func safeObjectName(original, ext string) string {
	name := unsafeNameChars.ReplaceAllString(original, "_")
	if strings.Trim(name, "_.-") == "" {
		name = uuid.NewString() + ext
	}
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), name)
}
