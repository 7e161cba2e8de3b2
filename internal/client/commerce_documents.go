package client

// GraphQL documents for every named operation against the commerce backend.
// Each selects exactly the fields its typed payload declares.

const checkoutCreateDoc = `
mutation CreateCheckout($channel: String!, $lines: [CheckoutLineInput!]!) {
  checkoutCreate(input: { channel: $channel, lines: $lines }) {
    checkout {
      id
      subtotalPrice { net { amount currency } }
      totalPrice {
        net { amount currency }
        gross { amount currency }
      }
    }
    errors { field message }
  }
}`

const checkoutShippingAddressUpdateDoc = `
mutation UpdateShippingAddress($checkoutId: ID!, $address: AddressInput!) {
  checkoutShippingAddressUpdate(checkoutId: $checkoutId, shippingAddress: $address) {
    checkout {
      id
      subtotalPrice { net { amount currency } }
      totalPrice {
        net { amount currency }
        gross { amount currency }
      }
    }
    errors { field message }
  }
}`

const checkoutBillingAddressUpdateDoc = `
mutation UpdateBillingAddress($checkoutId: ID!, $billingAddress: AddressInput!) {
  checkoutBillingAddressUpdate(checkoutId: $checkoutId, billingAddress: $billingAddress) {
    checkout { id }
    errors { field message }
  }
}`

const checkoutEmailUpdateDoc = `
mutation UpdateCheckoutEmail($checkoutId: ID!, $email: String!) {
  checkoutEmailUpdate(checkoutId: $checkoutId, email: $email) {
    checkout { id }
    errors { field message }
  }
}`

const checkoutDeliveryMethodUpdateDoc = `
mutation UpdateDeliveryMethod($checkoutId: ID!, $deliveryMethodId: ID!) {
  checkoutDeliveryMethodUpdate(id: $checkoutId, deliveryMethodId: $deliveryMethodId) {
    checkout {
      id
      subtotalPrice { net { amount currency } }
      totalPrice {
        net { amount currency }
        gross { amount currency }
      }
    }
    errors { field message }
  }
}`

const checkoutCustomerAttachDoc = `
mutation AttachCheckoutToUser($checkoutId: ID!) {
  checkoutCustomerAttach(checkoutId: $checkoutId) {
    checkout {
      id
      user { email }
    }
    errors { field message }
  }
}`

const paymentGatewayInitializeDoc = `
mutation GatewayInitialization($checkoutId: ID!, $amount: PositiveDecimal) {
  paymentGatewayInitialize(id: $checkoutId, amount: $amount) {
    gatewayConfigs { id data }
    errors { field message }
  }
}`

const transactionInitializeDoc = `
mutation TransactionInitialization($checkoutId: ID!, $paymentGatewayId: String!, $amount: PositiveDecimal, $data: JSON) {
  transactionInitialize(
    id: $checkoutId
    paymentGateway: { id: $paymentGatewayId, data: $data }
    amount: $amount
  ) {
    transaction { id }
    errors { field message }
  }
}`

const transactionProcessDoc = `
mutation TransactionProcessing($transactionId: ID!) {
  transactionProcess(id: $transactionId) {
    transaction { id }
    errors { field message }
  }
}`

const checkoutCompleteDoc = `
mutation CompleteCheckout($checkoutId: ID!) {
  checkoutComplete(checkoutId: $checkoutId) {
    order { id }
    errors { field message }
  }
}`

const tokenCreateDoc = `
mutation Login($email: String!, $password: String!) {
  tokenCreate(email: $email, password: $password) {
    token
    errors { field message }
  }
}`

const meDoc = `
query Me {
  me { email }
}`

const profileDoc = `
query Profile {
  me {
    email
    firstName
    lastName
    defaultShippingAddress {
      id
      streetAddress1
      streetAddress2
      city
      countryArea
      postalCode
      country { code }
    }
  }
}`

const accountUpdateDoc = `
mutation UpdateName($firstName: String, $lastName: String) {
  accountUpdate(input: { firstName: $firstName, lastName: $lastName }) {
    errors { field message }
  }
}`

const accountAddressCreateDoc = `
mutation CreateAddress($input: AddressInput!) {
  accountAddressCreate(input: $input) {
    address { id }
    errors { field message }
  }
}`

const accountAddressUpdateDoc = `
mutation UpdateAddress($id: ID!, $input: AddressInput!) {
  accountAddressUpdate(id: $id, input: $input) {
    errors { field message }
  }
}`

const accountSetDefaultAddressDoc = `
mutation SetDefaultAddress($id: ID!) {
  accountSetDefaultAddress(id: $id, type: SHIPPING) {
    errors { field message }
  }
}`

const passwordChangeDoc = `
mutation ChangePassword($oldPassword: String!, $newPassword: String!) {
  passwordChange(oldPassword: $oldPassword, newPassword: $newPassword) {
    errors { field message }
  }
}`

const accountRegisterDoc = `
mutation Register($email: String!, $password: String!) {
  accountRegister(input: { email: $email, password: $password }) {
    errors { field message }
  }
}`

const confirmAccountDoc = `
mutation ConfirmAccount($email: String!, $token: String!) {
  confirmAccount(email: $email, token: $token) {
    errors { field message }
  }
}`

const requestPasswordResetDoc = `
mutation RequestPasswordReset($email: String!) {
  requestPasswordReset(email: $email) {
    errors { field message }
  }
}`

const setPasswordDoc = `
mutation SetPassword($email: String!, $token: String!, $password: String!) {
  setPassword(email: $email, token: $token, password: $password) {
    token
    errors { field message }
  }
}`

const productVariantDoc = `
query ProductPanel($variantId: ID!, $channel: String!) {
  productVariant(id: $variantId, channel: $channel) {
    id
    pricing {
      price { net { amount currency } }
    }
    product {
      name
      description
      media { url alt }
    }
  }
}`
