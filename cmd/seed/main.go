// cmd/seed seeds a running server with demo doctors and patients through
// the public API. It needs an existing admin account to authenticate as.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

var (
	baseURL    = flag.String("url", env("API_BASE_URL", "http://localhost:8080"), "Server base URL")
	adminEmail = flag.String("admin-email", env("ADMIN_EMAIL", "admin@example.com"), "Admin e-mail")
	adminPass  = flag.String("admin-pass", env("ADMIN_PASSWORD", "Password123"), "Admin password")
	nDoctors   = flag.Int("doctors", envInt("DOCTORS", 5), "How many doctors to create")
	nPatients  = flag.Int("patients", envInt("PATIENTS", 20), "How many patients to create")
)

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var i int
		if _, err := fmt.Sscan(v, &i); err == nil && i > 0 {
			return i
		}
	}
	return def
}

func postJSON(method, path string, body any, token string) (*http.Response, error) {
	b, _ := json.Marshal(body)
	req, _ := http.NewRequest(method, *baseURL+path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return http.DefaultClient.Do(req)
}

func must(body io.ReadCloser) []byte {
	defer body.Close()
	data, _ := io.ReadAll(body)
	return data
}

// apiResp is the response envelope every endpoint renders.
type apiResp struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

func main() {
	flag.Parse()
	gofakeit.Seed(time.Now().UnixNano())

	fmt.Printf("Seeding %s: %d doctors, %d patients\n", *baseURL, *nDoctors, *nPatients)

	token, err := login(*adminEmail, *adminPass)
	if err != nil {
		fmt.Fprintln(os.Stderr, "FATAL:", err)
		os.Exit(1)
	}

	for i := 0; i < *nDoctors; i++ {
		if err := createDoctor(token); err != nil {
			fmt.Fprintln(os.Stderr, "doctor:", err)
		}
	}

	for i := 0; i < *nPatients; i++ {
		if err := createPatient(token); err != nil {
			fmt.Fprintln(os.Stderr, "patient:", err)
		}
	}

	fmt.Println("done")
}

func login(email, pass string) (string, error) {
	resp, err := postJSON(http.MethodPost, "/api/v1/auth/login",
		map[string]string{"email": email, "password": pass}, "")
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("login failed (%d): %s", resp.StatusCode, must(resp.Body))
	}

	var r apiResp
	if err := json.Unmarshal(must(resp.Body), &r); err != nil {
		return "", err
	}
	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(r.Data, &data); err != nil {
		return "", err
	}
	return data.Token, nil
}

func createDoctor(token string) error {
	body := map[string]string{
		"email":          gofakeit.Email(),
		"password":       "Password123",
		"first_name":     gofakeit.FirstName(),
		"last_name":      gofakeit.LastName(),
		"license_number": fmt.Sprintf("MD-%06d", gofakeit.Number(100000, 999999)),
		"specialty":      gofakeit.JobTitle(),
		"phone":          gofakeit.Phone(),
	}

	resp, err := postJSON(http.MethodPost, "/api/v1/doctors/", body, token)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("create failed (%d): %s", resp.StatusCode, must(resp.Body))
	}
	must(resp.Body)
	return nil
}

func createPatient(token string) error {
	email := gofakeit.Email()
	body := map[string]string{
		"email":         email,
		"password":      "Password123",
		"first_name":    gofakeit.FirstName(),
		"last_name":     gofakeit.LastName(),
		"date_of_birth": gofakeit.DateRange(time.Date(1940, 1, 1, 0, 0, 0, 0, time.UTC), time.Now().AddDate(-18, 0, 0)).Format("2006-01-02"),
		"phone":         gofakeit.Phone(),
		"address":       gofakeit.Address().Address,
	}

	resp, err := postJSON(http.MethodPost, "/api/v1/patients/", body, token)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("create failed (%d): %s", resp.StatusCode, must(resp.Body))
	}
	must(resp.Body)

	// Each patient also gets a starter vaccination schedule.
	patientToken, err := login(email, "Password123")
	if err != nil {
		return err
	}

	vaccines := map[string]any{
		"vaccines": []map[string]any{
			{"name": "MMR", "dose": 1, "date": gofakeit.DateRange(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), time.Now()).Format("2006-01-02")},
			{"name": "Tetanus", "dose": gofakeit.Number(1, 3)},
		},
	}
	resp, err = postJSON(http.MethodPut, "/api/v1/patients/me/vaccination-schedule", vaccines, patientToken)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("vaccination seed failed (%d): %s", resp.StatusCode, must(resp.Body))
	}
	must(resp.Body)
	return nil
}
