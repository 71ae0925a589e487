package fsxs3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/Abraxas-365/careers/pkg/errx"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	objects map[string][]byte
	types   map[string]string
	fail    error
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Key)] = data
	f.types[aws.ToString(in.Key)] = aws.ToString(in.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	delete(f.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3FileSystem_RoundTrip(t *testing.T) {
	ctx := context.Background()
	client := newFakeS3()
	fs := NewS3FileSystem(client, "assets", "uploads", "us-east-1", "")

	p := fs.Join("logos", "c-1", "logo.png")
	require.NoError(t, fs.WriteFile(ctx, p, []byte("png")))

	assert.Contains(t, client.objects, "uploads/logos/c-1/logo.png")
	assert.Equal(t, "image/png", client.types["uploads/logos/c-1/logo.png"])

	data, err := fs.ReadFile(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), data)

	assert.Equal(t, "https://assets.s3.us-east-1.amazonaws.com/uploads/logos/c-1/logo.png", fs.URL(p))

	require.NoError(t, fs.DeleteFile(ctx, p))
	assert.Empty(t, client.objects)
}

func TestS3FileSystem_CustomPublicURL(t *testing.T) {
	fs := NewS3FileSystem(newFakeS3(), "assets", "", "us-east-1", "https://cdn.example.com/")

	assert.Equal(t, "https://cdn.example.com/a/b.pdf", fs.URL("a/b.pdf"))
}

func TestS3FileSystem_WrapsClientErrors(t *testing.T) {
	client := newFakeS3()
	client.fail = errors.New("throttled")
	fs := NewS3FileSystem(client, "assets", "uploads", "us-east-1", "")

	err := fs.WriteFile(context.Background(), "x.pdf", []byte("x"))
	assert.True(t, errx.IsType(err, errx.TypeExternal))
}
