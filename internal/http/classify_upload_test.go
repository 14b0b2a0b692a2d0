package handlers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func multipartUpload(t *testing.T, target, token, field, filename, content string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest("POST", target, &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	return req
}

func TestUploadClassificationImage(t *testing.T) {
	e := newEnv(t)
	tok := registerAndLogin(t, e, "a@x.com", "a1", "pw1")
	createClassification(t, e, tok, "working")

	resp, err := e.app.Test(multipartUpload(t, "/classify/upload-image/1", tok, "file", "photo.jpg", "jpegbytes"))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("upload: want 200, got %d", resp.StatusCode)
	}
	var body map[string]any
	decodeBody(t, resp, &body)
	if body["message"] != "image uploaded" || body["path"] != "1_photo.jpg" {
		t.Fatalf("unexpected upload response: %v", body)
	}

	// path shows up on the listing
	resp, err = e.app.Test(authedReq("GET", "/classify/", tok, nil))
	if err != nil {
		t.Fatal(err)
	}
	var list []map[string]any
	decodeBody(t, resp, &list)
	if len(list) != 1 || list[0]["image_path"] != "1_photo.jpg" {
		t.Fatalf("image path not recorded: %v", list)
	}
}

func TestUploadRequiresOwnershipAndFile(t *testing.T) {
	e := newEnv(t)
	ownerTok := registerAndLogin(t, e, "owner@x.com", "owner", "pw1")
	otherTok := registerAndLogin(t, e, "other@x.com", "other", "pw1")
	createClassification(t, e, ownerTok, "working")

	resp, err := e.app.Test(multipartUpload(t, "/classify/upload-image/1", otherTok, "file", "x.jpg", "x"))
	if err != nil {
		t.Fatal(err)
	}
	if got := errMessage(t, resp); resp.StatusCode != http.StatusNotFound || got != "classification not found" {
		t.Fatalf("foreign upload: got %d %q", resp.StatusCode, got)
	}

	// wrong field name means no file part
	resp, err = e.app.Test(multipartUpload(t, "/classify/upload-image/1", ownerTok, "image", "x.jpg", "x"))
	if err != nil {
		t.Fatal(err)
	}
	if got := errMessage(t, resp); resp.StatusCode != http.StatusBadRequest || got != "file is required" {
		t.Fatalf("missing file: got %d %q", resp.StatusCode, got)
	}
}

func TestClassifyRequiredFields(t *testing.T) {
	e := newEnv(t)
	tok := registerAndLogin(t, e, "a@x.com", "a1", "pw1")

	resp, err := e.app.Test(authedReq("POST", "/classify/", tok, fiber.Map{
		"item_name": "thing", "category": "phones",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if got := errMessage(t, resp); resp.StatusCode != http.StatusBadRequest || got != "condition is required" {
		t.Fatalf("missing condition: got %d %q", resp.StatusCode, got)
	}
}
