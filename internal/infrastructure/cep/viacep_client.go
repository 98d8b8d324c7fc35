package cep

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"prevencar_vistorias/internal/usecase/interfaces"
)

const defaultBaseURL = "https://viacep.com.br/ws"

// ViaCEPClient resolves Brazilian postal codes through the public ViaCEP API.

type ViaCEPClient struct {
	baseURL string
	client  *http.Client
}

var _ interfaces.IAddressLookup = (*ViaCEPClient)(nil)

func NewViaCEPClient() *ViaCEPClient {
	return &ViaCEPClient{
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type viaCEPResponse struct {
	Street       string          `json:"logradouro"`
	Neighborhood string          `json:"bairro"`
	Complement   string          `json:"complemento"`
	Erro         json.RawMessage `json:"erro"`
}

func (c *ViaCEPClient) Lookup(ctx context.Context, cep string) (interfaces.Address, error) {
	digits := onlyDigits(cep)
	if len(digits) != 8 {
		return interfaces.Address{}, interfaces.ErrCEPNotFound
	}

	url := fmt.Sprintf("%s/%s/json/", c.baseURL, digits)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return interfaces.Address{}, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		log.Printf("[cep][client] lookup failed cep=%s err=%v", digits, err)
		return interfaces.Address{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusBadRequest {
		return interfaces.Address{}, interfaces.ErrCEPNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return interfaces.Address{}, fmt.Errorf("viacep returned status %d", resp.StatusCode)
	}

	var body viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return interfaces.Address{}, err
	}
	// ViaCEP flags unknown CEPs with an "erro" field instead of a 404.
	if len(body.Erro) > 0 {
		return interfaces.Address{}, interfaces.ErrCEPNotFound
	}

	return interfaces.Address{
		Street:       body.Street,
		Neighborhood: body.Neighborhood,
		Complement:   body.Complement,
	}, nil
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
