package writer

import (
	"bytes"
	"errors"
	"io/ioutil"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/goleveldb/filewriter/buffer"
	"github.com/goleveldb/filewriter/config"
	mockfile "github.com/goleveldb/filewriter/internal/mock/file"
	"github.com/goleveldb/filewriter/status"
)

//go:generate make gen_mock_file_writer -C ..

func TestWriteBatchContent(t *testing.T) {
	fileName, id := openTestWriter(t, status.ModeWrite)

	descriptors := []buffer.Descriptor{
		buffer.NewDescriptor([]byte("Hello, ")),
		{Data: nil, Size: 0},
		buffer.NewDescriptor([]byte("World")),
		buffer.NewDescriptor([]byte("!")),
	}

	if code := WriteBatch(id, descriptors); code != status.Success {
		t.Errorf("WriteBatch() code = %v, want %v", code, status.Success)
	}
	if code := Close(id); code != status.Success {
		t.Errorf("Close() code = %v, want %v", code, status.Success)
	}

	checkFileContent(t, fileName, "Hello, World!")
}

func TestWriteBatchValidation(t *testing.T) {
	tests := []struct {
		name        string
		descriptors []buffer.Descriptor
		wantCode    status.Code
		wantContent string
	}{
		{
			name:        "nil descriptor slice",
			descriptors: nil,
			wantCode:    status.InvalidData,
			wantContent: "",
		},
		{
			name:        "empty descriptor slice",
			descriptors: []buffer.Descriptor{},
			wantCode:    status.Success,
			wantContent: "",
		},
		{
			name: "nil data with positive size",
			descriptors: []buffer.Descriptor{
				{Data: nil, Size: 5},
			},
			wantCode:    status.InvalidData,
			wantContent: "",
		},
		{
			name: "negative size",
			descriptors: []buffer.Descriptor{
				{Data: []byte("ab"), Size: -1},
			},
			wantCode:    status.InvalidData,
			wantContent: "",
		},
		{
			name: "size beyond data",
			descriptors: []buffer.Descriptor{
				{Data: []byte("ab"), Size: 5},
			},
			wantCode:    status.InvalidData,
			wantContent: "",
		},
		{
			name: "descriptor covering a prefix",
			descriptors: []buffer.Descriptor{
				{Data: []byte("prefix-rest"), Size: 6},
			},
			wantCode:    status.Success,
			wantContent: "prefix",
		},
		{
			name: "descriptors before a bad one are kept",
			descriptors: []buffer.Descriptor{
				buffer.NewDescriptor([]byte("kept")),
				{Data: nil, Size: 3},
				buffer.NewDescriptor([]byte("never reached")),
			},
			wantCode:    status.InvalidData,
			wantContent: "kept",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fileName, id := openTestWriter(t, status.ModeWrite)

			if code := WriteBatch(id, tt.descriptors); code != tt.wantCode {
				t.Errorf("WriteBatch() code = %v, want %v", code, tt.wantCode)
			}
			if code := Close(id); code != status.Success {
				t.Fatalf("Close() code = %v, want %v", code, status.Success)
			}

			checkFileContent(t, fileName, tt.wantContent)
		})
	}
}

func TestWriteBatchPartialFailure(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockWriter := mockfile.NewMockWriter(mockCtrl)

	id := registry.Register(mockWriter)
	defer registry.Invalidate(id)

	first := []byte("first")
	second := []byte("second")

	gomock.InOrder(
		mockWriter.EXPECT().Append(first).Return(nil),
		mockWriter.EXPECT().Append(second).Return(errors.New("transfer failed")),
	)

	descriptors := []buffer.Descriptor{
		buffer.NewDescriptor(first),
		buffer.NewDescriptor(second),
		buffer.NewDescriptor([]byte("never written")),
	}

	if code := WriteBatch(id, descriptors); code != status.FileWriteError {
		t.Errorf("WriteBatch() code = %v, want %v", code, status.FileWriteError)
	}
}

func TestWriteLargeDispatch(t *testing.T) {
	small := make([]byte, config.LARGE_WRITE_THRESHOLD)
	big := make([]byte, config.LARGE_WRITE_THRESHOLD+1)

	tests := []struct {
		name       string
		data       []byte
		expectCall func(m *mockfile.MockWriter)
	}{
		{
			name: "at threshold stays buffered",
			data: small,
			expectCall: func(m *mockfile.MockWriter) {
				m.EXPECT().Append(small).Return(nil)
			},
		},
		{
			name: "above threshold bypasses the buffer",
			data: big,
			expectCall: func(m *mockfile.MockWriter) {
				m.EXPECT().AppendDirect(big).Return(nil)
			},
		},
		{
			name:       "empty write never reaches the writer",
			data:       nil,
			expectCall: func(m *mockfile.MockWriter) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCtrl := gomock.NewController(t)
			defer mockCtrl.Finish()
			mockWriter := mockfile.NewMockWriter(mockCtrl)

			id := registry.Register(mockWriter)
			defer registry.Invalidate(id)

			tt.expectCall(mockWriter)

			if code := WriteLarge(id, tt.data); code != status.Success {
				t.Errorf("WriteLarge() code = %v, want %v", code, status.Success)
			}
		})
	}
}

func TestWriteLargeFailure(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockWriter := mockfile.NewMockWriter(mockCtrl)

	id := registry.Register(mockWriter)
	defer registry.Invalidate(id)

	big := make([]byte, config.LARGE_WRITE_THRESHOLD+1)
	mockWriter.EXPECT().AppendDirect(big).Return(errors.New("transfer failed"))

	if code := WriteLarge(id, big); code != status.FileWriteError {
		t.Errorf("WriteLarge() code = %v, want %v", code, status.FileWriteError)
	}
}

func TestWriteLargeMatchesRaw(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"below threshold", 1000},
		{"above threshold", config.LARGE_WRITE_THRESHOLD + 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := make([]byte, tt.size)
			for i := range payload {
				payload[i] = byte(i % 251)
			}

			largeName, largeID := openTestWriter(t, status.ModeWrite)
			if code := WriteLarge(largeID, payload); code != status.Success {
				t.Fatalf("WriteLarge() code = %v, want %v", code, status.Success)
			}
			if code := Close(largeID); code != status.Success {
				t.Fatalf("Close() code = %v, want %v", code, status.Success)
			}

			rawName, rawID := openTestWriter(t, status.ModeWrite)
			for offset := 0; offset < len(payload); offset += 4096 {
				end := offset + 4096
				if end > len(payload) {
					end = len(payload)
				}
				if code := WriteRaw(rawID, payload[offset:end]); code != status.Success {
					t.Fatalf("WriteRaw() code = %v, want %v", code, status.Success)
				}
			}
			if code := Close(rawID); code != status.Success {
				t.Fatalf("Close() code = %v, want %v", code, status.Success)
			}

			largeContent, err := ioutil.ReadFile(largeName)
			if err != nil {
				t.Fatal(err)
			}
			rawContent, err := ioutil.ReadFile(rawName)
			if err != nil {
				t.Fatal(err)
			}

			if !bytes.Equal(largeContent, payload) {
				t.Error("large write did not reproduce the payload")
			}
			if !bytes.Equal(largeContent, rawContent) {
				t.Error("large write and raw writes produced different content")
			}
		})
	}
}
