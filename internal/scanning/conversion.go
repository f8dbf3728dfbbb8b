package scanning

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	"image/png"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/gen2brain/heic"
)

// ticketScanPrompt is the shared prompt used by all vision providers for
// reading lottery receipts
const ticketScanPrompt = `You are analyzing a photograph of a printed lottery ticket receipt for the Powerball game. Carefully read all text in the image and extract every play line.

Each play line on a Powerball ticket has:

1. **Line label**: A short label at the start of the line, usually a single letter such as "A", "B", "C".

2. **Main numbers**: Exactly 5 numbers between 1 and 69, usually printed as two-digit values separated by spaces.

3. **Powerball number**: One number between 1 and 26, printed after the main numbers, often prefixed with "PB" or set apart visually.

Return ONLY a valid JSON array in this exact format, one object per play line:
[
  {"line": "A", "numbers": [9, 29, 38, 40, 52], "powerball": 23}
]

Important:
- Include every play line you can read, in the order printed on the ticket
- numbers must contain the 5 main numbers as integers, not strings
- powerball must be a single integer
- Ignore the Power Play flag, price, barcode, and draw date
- If no play lines are readable, return an empty array: []
- Do not include any text before or after the JSON
- Do not use markdown code blocks`

// prepareImageData normalizes the MIME type and converts the image to PNG if
// needed. Vision providers then always upload PNG, which every model accepts.
func prepareImageData(imageData []byte, contentType string) ([]byte, error) {
	mimeType := strings.ToLower(strings.TrimSpace(contentType))
	if mimeType == "" {
		mimeType = "image/jpeg" // default for phone photos
	}

	switch {
	case mimeType == "application/pdf":
		pngData, err := pdfToPNG(imageData)
		if err != nil {
			return nil, fmt.Errorf("converting PDF to image: %w", err)
		}
		return pngData, nil
	case mimeType == "image/png" && !isHEICData(imageData):
		return imageData, nil
	default:
		pngData, err := imageToPNG(imageData, mimeType)
		if err != nil {
			return nil, fmt.Errorf("converting image to PNG: %w", err)
		}
		return pngData, nil
	}
}

// pdfToPNG renders the first page of a PDF as a PNG. Scanned receipts are
// single page.
func pdfToPNG(pdfData []byte) ([]byte, error) {
	doc, err := fitz.NewFromMemory(pdfData)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	defer doc.Close()

	img, err := doc.Image(0)
	if err != nil {
		return nil, fmt.Errorf("rendering PDF page: %w", err)
	}

	return encodePNG(img)
}

// imageToPNG converts any supported image format to PNG
func imageToPNG(imageData []byte, mimeType string) ([]byte, error) {
	var img image.Image
	var err error

	if isHEICData(imageData) || isHEICMimeType(mimeType) {
		// iPhone photos; Go's standard image package can't decode these
		img, err = heic.Decode(bytes.NewReader(imageData))
		if err != nil {
			return nil, fmt.Errorf("decoding HEIC/HEIF image: %w", err)
		}
	} else {
		img, _, err = image.Decode(bytes.NewReader(imageData))
		if err != nil {
			return nil, fmt.Errorf("decoding image (supported: JPEG, PNG, GIF, HEIC, HEIF, PDF): %w", err)
		}
	}

	return encodePNG(img)
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// isHEICData checks the ftyp box brand for HEIC/HEIF signatures
func isHEICData(data []byte) bool {
	if len(data) < 12 || string(data[4:8]) != "ftyp" {
		return false
	}
	switch string(data[8:12]) {
	case "heic", "heif", "mif1", "msf1":
		return true
	}
	return false
}

func isHEICMimeType(mimeType string) bool {
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	return strings.Contains(mimeType, "heic") || strings.Contains(mimeType, "heif")
}
