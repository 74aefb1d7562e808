package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

// loadAWSConfig は SES / S3 共通で、auth_type に応じて認証方法を切り替えた AWS 設定を返します
func loadAWSConfig(ctx context.Context, component, region, authType, accessKeyID, secretAccessKey string) (aws.Config, error) {
	logger := slog.Default().With("component", component)
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}

	switch authType {
	case "static_credentials":
		logger.Info("Configuring AWS client with static credentials.")
		if accessKeyID == "" || secretAccessKey == "" {
			return aws.Config{}, fmt.Errorf("%s: auth_type is static_credentials but access_key_id or secret_access_key is missing", component)
		}
		creds := credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, "")
		opts = append(opts, awsconfig.WithCredentialsProvider(creds))
	case "iam_role", "":
		// ECS タスクロールや EC2 インスタンスプロファイルは SDK が自動で探す
		logger.Info("Configuring AWS client with IAM Role credentials.")
	default:
		logger.Warn("Unknown auth_type specified, defaulting to IAM Role.", "type", authType)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("%s: failed to load AWS config: %w", component, err)
	}
	return awsCfg, nil
}
