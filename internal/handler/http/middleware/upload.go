package middleware

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/zeecare/hms-backend/internal/domain/entity"
	usecasecontract "github.com/zeecare/hms-backend/internal/usecase/contract"
)

const uploadsKey = "hms.uploads"

// multipartMemory is what ParseMultipartForm may keep in memory before
// spilling to its own temp files.
const multipartMemory = 1 << 20

// UploadedFile is a multipart file part buffered to disk.
type UploadedFile struct {
	Field       string
	FileName    string
	ContentType string
	Size        int64
	TempPath    string
}

// Open reopens the buffered file.
func (f *UploadedFile) Open() (io.ReadCloser, error) {
	return os.Open(f.TempPath)
}

// AvatarFile adapts f for the user use case.
func (f *UploadedFile) AvatarFile() *usecasecontract.AvatarFile {
	return &usecasecontract.AvatarFile{FileName: f.FileName, Size: f.Size, Open: f.Open}
}

// FileUpload buffers every file of a multipart request into tempDir and
// removes the buffered files once the request has been handled.
func FileUpload(tempDir string, maxBytes int64, logger usecasecontract.IAppLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.ContentType() != binding.MIMEMultipartPOSTForm {
			c.Next()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		if err := c.Request.ParseMultipartForm(multipartMemory); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				abortWith(c, entity.NewBadRequestError("File Too Large!"))
				return
			}
			abortWith(c, entity.NewBadRequestError("Invalid Multipart Body!"))
			return
		}
		if err := os.MkdirAll(tempDir, 0o700); err != nil {
			abortWith(c, entity.NewInternalError("upload buffer unavailable", err))
			return
		}

		files := make(map[string]*UploadedFile)
		defer func() {
			for _, f := range files {
				if err := os.Remove(f.TempPath); err != nil && !os.IsNotExist(err) {
					logger.Warnf("remove buffered upload %s: %v", f.TempPath, err)
				}
			}
			if c.Request.MultipartForm != nil {
				_ = c.Request.MultipartForm.RemoveAll()
			}
		}()

		for field, headers := range c.Request.MultipartForm.File {
			if len(headers) == 0 {
				continue
			}
			f, err := bufferPart(tempDir, field, headers[0])
			if err != nil {
				abortWith(c, entity.NewInternalError("upload buffer unavailable", err))
				return
			}
			files[field] = f
		}

		c.Set(uploadsKey, files)
		c.Next()
	}
}

func bufferPart(tempDir, field string, header *multipart.FileHeader) (*UploadedFile, error) {
	src, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	dst, err := os.CreateTemp(tempDir, "upload-*")
	if err != nil {
		return nil, err
	}
	n, err := io.Copy(dst, src)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(dst.Name())
		return nil, err
	}

	return &UploadedFile{
		Field:       field,
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        n,
		TempPath:    dst.Name(),
	}, nil
}

// UploadedFiles returns the buffered files of the request keyed by form field.
func UploadedFiles(c *gin.Context) map[string]*UploadedFile {
	if v, ok := c.Get(uploadsKey); ok {
		if files, ok := v.(map[string]*UploadedFile); ok {
			return files
		}
	}
	return map[string]*UploadedFile{}
}
